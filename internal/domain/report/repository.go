package report

import (
	"context"

	"github.com/lifecarelabs/lab-portal/internal/models"
)

type Repository interface {
	ReportIDExists(
		ctx context.Context,
		reportID string,
	) (bool, error)

	TokenExists(
		ctx context.Context,
		token string,
	) (bool, error)

	// CreateReport insere respeitando os índices únicos de report_id e
	// token_number; a violação concorrente é devolvida ao usecase.
	CreateReport(
		ctx context.Context,
		r *models.Report,
	) error

	GetByToken(
		ctx context.Context,
		token string,
	) (*models.Report, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Report, error)

	DeleteReport(
		ctx context.Context,
		id uint,
	) error

	ListReports(
		ctx context.Context,
	) ([]models.Report, error)

	ListByPatientName(
		ctx context.Context,
		name string,
	) ([]models.Report, error)
}
