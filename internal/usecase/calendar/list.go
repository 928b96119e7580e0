package calendar

import (
	"context"

	"github.com/lifecarelabs/lab-portal/internal/domain/schedule"
	"github.com/lifecarelabs/lab-portal/internal/models"
	"github.com/lifecarelabs/lab-portal/internal/timezone"
)

type ListBlocks struct {
	cal         schedule.CalendarRepository
	labTimezone string
}

func NewListBlocks(
	cal schedule.CalendarRepository,
	labTimezone string,
) *ListBlocks {
	return &ListBlocks{
		cal:         cal,
		labTimezone: labTimezone,
	}
}

// Execute lista os bloqueios de hoje em diante (bloqueios passados só
// interessam à auditoria).
func (uc *ListBlocks) Execute(
	ctx context.Context,
) ([]models.CapacityBlock, error) {
	return uc.cal.ListBlocks(ctx, timezone.Today(uc.labTimezone))
}
