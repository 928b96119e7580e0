package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/lifecarelabs/lab-portal/internal/domain/report"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) ReportIDExists(
	ctx context.Context,
	reportID string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("report_id = ?", reportID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReportGormRepository) TokenExists(
	ctx context.Context,
	token string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("token_number = ?", token).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateReport confia nos índices únicos: a checagem prévia do usecase
// é cortesia, a corrida concorrente é decidida aqui pelo banco.
func (r *ReportGormRepository) CreateReport(
	ctx context.Context,
	report *models.Report,
) error {

	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "token") {
				return httperr.ErrConflict(
					"duplicate_token",
					"Token já está em uso.",
				)
			}
			return httperr.ErrConflict(
				"duplicate_report_id",
				"Identificador de laudo já existe.",
			)
		}
		return err
	}
	return nil
}

func (r *ReportGormRepository) GetByToken(
	ctx context.Context,
	token string,
) (*models.Report, error) {

	var report models.Report
	err := r.db.WithContext(ctx).
		Where("token_number = ?", token).
		First(&report).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Report, error) {

	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(
				"report_not_found",
				"Laudo não encontrado.",
			)
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportGormRepository) DeleteReport(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Report{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(
			"report_not_found",
			"Laudo não encontrado.",
		)
	}
	return nil
}

func (r *ReportGormRepository) ListReports(
	ctx context.Context,
) ([]models.Report, error) {

	var reports []models.Report
	if err := r.db.WithContext(ctx).
		Order("uploaded_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportGormRepository) ListByPatientName(
	ctx context.Context,
	name string,
) ([]models.Report, error) {

	var reports []models.Report
	if err := r.db.WithContext(ctx).
		Where("patient_name ILIKE ?", "%"+name+"%").
		Order("uploaded_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Compile-time check
var _ domain.Repository = (*ReportGormRepository)(nil)
