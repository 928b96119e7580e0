package schedule

import (
	"context"
	"time"

	"github.com/lifecarelabs/lab-portal/internal/models"
)

// CalendarRepository é a superfície do Calendar Store: bloqueios por
// data (dia inteiro) e por (data, slot).
type CalendarRepository interface {
	// Devolve nil (sem erro) quando não há bloqueio de dia inteiro.
	GetWholeDayBlock(
		ctx context.Context,
		date time.Time,
	) (*models.CapacityBlock, error)

	ListSlotBlocks(
		ctx context.Context,
		date time.Time,
	) ([]models.CapacityBlock, error)

	// CreateBlock insere respeitando o índice único (date, time_slot);
	// violação concorrente resulta em exatamente um sucesso.
	CreateBlock(
		ctx context.Context,
		block *models.CapacityBlock,
	) error

	GetBlock(
		ctx context.Context,
		id uint,
	) (*models.CapacityBlock, error)

	DeleteBlock(
		ctx context.Context,
		id uint,
	) error

	ListBlocks(
		ctx context.Context,
		from time.Time,
	) ([]models.CapacityBlock, error)
}
