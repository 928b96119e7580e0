package report

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"unicode"
)

// ===============================
// Credenciais de acesso
// ===============================

const (
	reportIDPrefix = "RID"
	secretLength   = 4
	secretFiller   = "X"
)

// NewReportID sorteia um identificador no formato fixo RID + 6 dígitos.
// Um sorteio isolado não garante unicidade; o chamador confere contra a
// base e re-sorteia em caso de colisão.
func NewReportID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("draw report id: %w", err)
	}
	return fmt.Sprintf("%s%06d", reportIDPrefix, n.Int64()+100000), nil
}

// MnemonicSecret deriva a senha padrão do nome do paciente: apenas
// letras, as 4 primeiras, maiúsculas, completadas com 'X' se faltar.
// É uma conveniência compartilhável por telefone, não um segredo forte;
// o chamador pode fornecer a própria senha.
func MnemonicSecret(patientName string) string {
	letters := make([]rune, 0, secretLength)

	for _, r := range patientName {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == secretLength {
				break
			}
		}
	}

	secret := string(letters)
	for i := len(letters); i < secretLength; i++ {
		secret += secretFiller
	}

	return secret
}
