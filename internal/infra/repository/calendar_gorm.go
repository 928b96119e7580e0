package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lifecarelabs/lab-portal/internal/domain/schedule"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/models"
)

type CalendarGormRepository struct {
	db *gorm.DB
}

func NewCalendarGormRepository(db *gorm.DB) *CalendarGormRepository {
	return &CalendarGormRepository{db: db}
}

func (r *CalendarGormRepository) GetWholeDayBlock(
	ctx context.Context,
	date time.Time,
) (*models.CapacityBlock, error) {

	var block models.CapacityBlock
	err := r.db.WithContext(ctx).
		Where("date = ? AND time_slot = ''", date).
		First(&block).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *CalendarGormRepository) ListSlotBlocks(
	ctx context.Context,
	date time.Time,
) ([]models.CapacityBlock, error) {

	var blocks []models.CapacityBlock
	if err := r.db.WithContext(ctx).
		Where("date = ? AND time_slot <> ''", date).
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// CreateBlock delega a unicidade de (date, time_slot) ao índice único:
// entre duas inserções concorrentes da mesma chave o banco aceita uma e
// devolve 23505 para a outra, que vira o mesmo erro de duplicidade.
func (r *CalendarGormRepository) CreateBlock(
	ctx context.Context,
	block *models.CapacityBlock,
) error {

	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrConflict(
				"duplicate_block",
				"Já existe um bloqueio para esta data e horário.",
			)
		}
		return err
	}
	return nil
}

func (r *CalendarGormRepository) GetBlock(
	ctx context.Context,
	id uint,
) (*models.CapacityBlock, error) {

	var block models.CapacityBlock
	if err := r.db.WithContext(ctx).First(&block, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(
				"block_not_found",
				"Bloqueio não encontrado.",
			)
		}
		return nil, err
	}
	return &block, nil
}

func (r *CalendarGormRepository) DeleteBlock(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.CapacityBlock{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(
			"block_not_found",
			"Bloqueio não encontrado.",
		)
	}
	return nil
}

func (r *CalendarGormRepository) ListBlocks(
	ctx context.Context,
	from time.Time,
) ([]models.CapacityBlock, error) {

	var blocks []models.CapacityBlock
	if err := r.db.WithContext(ctx).
		Where("date >= ?", from).
		Order("date ASC, time_slot ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// Compile-time check
var _ schedule.CalendarRepository = (*CalendarGormRepository)(nil)
