package report

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportIDPattern = regexp.MustCompile(`^RID[1-9]\d{5}$`)

func TestNewReportID(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 50; i++ {
		id, err := NewReportID()
		require.NoError(t, err)
		assert.Regexp(t, reportIDPattern, id)
		seen[id] = true
	}

	// 50 sorteios num espaço de 900 mil: colisão total seria um bug
	assert.Greater(t, len(seen), 1)
}

func TestMnemonicSecret(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Asha Rao", "ASHA"},
		{"ramesh", "RAME"},
		{"Al", "ALXX"},
		{"J. K. Rao", "JKRA"},
		{"  bo  ", "BOXX"},
		{"", "XXXX"},
		{"123-456", "XXXX"},
		{"a1b2c3d4e5", "ABCD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MnemonicSecret(tt.name), "name=%q", tt.name)
	}
}
