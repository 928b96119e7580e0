package calendar

import (
	"context"

	"github.com/lifecarelabs/lab-portal/internal/audit"
	"github.com/lifecarelabs/lab-portal/internal/domain/schedule"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/infra/cache"
	"github.com/lifecarelabs/lab-portal/internal/models"
	"github.com/lifecarelabs/lab-portal/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BlockCapacityInput struct {
	Date string

	// vazio = dia inteiro
	TimeSlot string

	Reason string
}

// ======================================================
// USE CASE
// ======================================================

type BlockCapacity struct {
	cal   schedule.CalendarRepository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewBlockCapacity(
	cal schedule.CalendarRepository,
	availCache *cache.AvailabilityCache,
	auditor *audit.Dispatcher,
) *BlockCapacity {
	return &BlockCapacity{
		cal:   cal,
		cache: availCache,
		audit: auditor,
	}
}

// Execute cria o bloqueio. Sem upsert: chave duplicada é rejeitada e o
// chamador precisa desbloquear antes. Bloqueio de dia inteiro convive
// com bloqueios por slot da mesma data.
func (uc *BlockCapacity) Execute(
	ctx context.Context,
	actorID uint,
	in BlockCapacityInput,
) (*models.CapacityBlock, error) {

	if in.Date == "" {
		return nil, httperr.ErrValidation("missing_date", "Data obrigatória.")
	}

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Data inválida.")
	}
	date = timezone.DateOnly(date)

	if in.TimeSlot != "" && !schedule.IsValidSlot(in.TimeSlot) {
		return nil, httperr.ErrValidation(
			"invalid_slot",
			"Horário fora da grade de coleta.",
		)
	}

	reason := in.Reason
	if reason == "" {
		reason = "Unavailable"
	}

	block := &models.CapacityBlock{
		Date:     date,
		TimeSlot: in.TimeSlot,
		Reason:   reason,
	}

	if err := uc.cal.CreateBlock(ctx, block); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "capacity_blocked",
		Entity:   "capacity_block",
		EntityID: &block.ID,
	})

	return block, nil
}
