package schedule

import "github.com/lifecarelabs/lab-portal/internal/models"

type SlotAvailability struct {
	Label   string `json:"time"`
	Blocked bool   `json:"is_blocked"`
}

type Availability struct {
	FullyBlocked bool               `json:"fully_blocked"`
	Reason       string             `json:"reason,omitempty"`
	Slots        []SlotAvailability `json:"slots"`
}

// ComputeAvailability combina a grade fixa com os bloqueios do dia.
// Bloqueio de dia inteiro tem precedência: curto-circuito sem calcular
// estado por slot.
func ComputeAvailability(
	wholeDay *models.CapacityBlock,
	slotBlocks []models.CapacityBlock,
) Availability {

	if wholeDay != nil {
		return Availability{
			FullyBlocked: true,
			Reason:       wholeDay.Reason,
		}
	}

	blocked := make(map[string]bool, len(slotBlocks))
	for _, b := range slotBlocks {
		if b.TimeSlot != "" {
			blocked[b.TimeSlot] = true
		}
	}

	slots := make([]SlotAvailability, 0, len(grid))
	for _, label := range grid {
		slots = append(slots, SlotAvailability{
			Label:   label,
			Blocked: blocked[label],
		})
	}

	return Availability{Slots: slots}
}
