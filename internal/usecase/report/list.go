package report

import (
	"context"

	domain "github.com/lifecarelabs/lab-portal/internal/domain/report"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

type ListReports struct {
	repo domain.Repository
}

func NewListReports(repo domain.Repository) *ListReports {
	return &ListReports{repo: repo}
}

func (uc *ListReports) All(ctx context.Context) ([]models.Report, error) {
	return uc.repo.ListReports(ctx)
}

// ByPatientName alimenta o painel do paciente: cobre laudos emitidos
// pelo nome antes do cadastro do usuário.
func (uc *ListReports) ByPatientName(
	ctx context.Context,
	name string,
) ([]models.Report, error) {
	return uc.repo.ListByPatientName(ctx, name)
}
