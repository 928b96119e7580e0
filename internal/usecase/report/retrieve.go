package report

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/lifecarelabs/lab-portal/internal/domain/report"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

// hash fixo comparado quando o token não existe, para que o tempo de
// resposta não revele se o token é válido
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("lab-portal"), bcrypt.DefaultCost)

type RetrieveReport struct {
	repo domain.Repository
}

func NewRetrieveReport(repo domain.Repository) *RetrieveReport {
	return &RetrieveReport{repo: repo}
}

// Execute valida o par token/senha. Token desconhecido e senha errada
// devolvem o mesmo erro genérico (evita enumeração de tokens).
func (uc *RetrieveReport) Execute(
	ctx context.Context,
	token string,
	secret string,
) (*models.Report, error) {

	if token == "" || secret == "" {
		return nil, httperr.ErrValidation(
			"missing_fields",
			"Informe o token e a senha.",
		)
	}

	rec, err := uc.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if rec == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(secret))
		return nil, authError()
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(secret)) != nil {
		return nil, authError()
	}

	return rec, nil
}

func authError() error {
	return httperr.ErrAuth(
		"invalid_credentials",
		"Token ou senha inválidos. Verifique e tente novamente.",
	)
}
