package validators

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}

	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)

	return form.File["file"][0]
}

func TestValidatePDF(t *testing.T) {
	ok, _ := ValidatePDF(uploadedFile(t, "laudo.pdf", "application/pdf", []byte("%PDF-1.4 data")))
	assert.True(t, ok)

	// content-type ausente ainda passa, desde que os bytes sejam PDF
	ok, _ = ValidatePDF(uploadedFile(t, "laudo.PDF", "", []byte("%PDF-1.7")))
	assert.True(t, ok)
}

func TestValidatePDFRejects(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		content     []byte
	}{
		{"no file", "", "", nil},
		{"wrong extension", "laudo.png", "image/png", []byte("%PDF fake")},
		{"wrong content type", "laudo.pdf", "image/png", []byte("%PDF-1.4")},
		{"wrong magic bytes", "laudo.pdf", "application/pdf", []byte("GIF89a")},
		{"empty body", "laudo.pdf", "application/pdf", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var header *multipart.FileHeader
			if tt.filename != "" {
				header = uploadedFile(t, tt.filename, tt.contentType, tt.content)
			}

			ok, reason := ValidatePDF(header)
			assert.False(t, ok)
			assert.NotEmpty(t, reason)
		})
	}
}
