package booking

import (
	"context"
	"time"

	"github.com/lifecarelabs/lab-portal/internal/domain/schedule"
)

type GetAvailability struct {
	cal schedule.CalendarRepository
}

func NewGetAvailability(cal schedule.CalendarRepository) *GetAvailability {
	return &GetAvailability{cal: cal}
}

// Execute é leitura pura e consultiva: quem reserva revalida na
// gravação, então o resultado aqui pode envelhecer sem risco.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
) (*schedule.Availability, error) {

	wholeDay, err := uc.cal.GetWholeDayBlock(ctx, date)
	if err != nil {
		return nil, err
	}

	// dia inteiro bloqueado: nem calcula slot a slot
	if wholeDay != nil {
		av := schedule.ComputeAvailability(wholeDay, nil)
		return &av, nil
	}

	slotBlocks, err := uc.cal.ListSlotBlocks(ctx, date)
	if err != nil {
		return nil, err
	}

	av := schedule.ComputeAvailability(nil, slotBlocks)
	return &av, nil
}
