package calendar

import (
	"context"

	"github.com/lifecarelabs/lab-portal/internal/audit"
	"github.com/lifecarelabs/lab-portal/internal/domain/schedule"
	"github.com/lifecarelabs/lab-portal/internal/infra/cache"
)

type UnblockCapacity struct {
	cal   schedule.CalendarRepository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewUnblockCapacity(
	cal schedule.CalendarRepository,
	availCache *cache.AvailabilityCache,
	auditor *audit.Dispatcher,
) *UnblockCapacity {
	return &UnblockCapacity{
		cal:   cal,
		cache: availCache,
		audit: auditor,
	}
}

func (uc *UnblockCapacity) Execute(
	ctx context.Context,
	actorID uint,
	blockID uint,
) error {

	// busca antes para saber qual data invalidar no cache
	block, err := uc.cal.GetBlock(ctx, blockID)
	if err != nil {
		return err
	}

	if err := uc.cal.DeleteBlock(ctx, blockID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, block.Date.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "capacity_unblocked",
		Entity:   "capacity_block",
		EntityID: &blockID,
	})

	return nil
}
