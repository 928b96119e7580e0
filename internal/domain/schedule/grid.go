package schedule

import "fmt"

// ===============================
// Slot Grid
// ===============================

// Grade fixa de coleta: 14 slots de uma hora, 07:00 às 21:00.
// Compartilhada por todos os dias; nunca persistida.

const (
	openingHour = 7
	slotCount   = 14
)

var (
	grid    []string
	gridSet map[string]int
)

func init() {
	grid = make([]string, 0, slotCount)
	gridSet = make(map[string]int, slotCount)

	for i := 0; i < slotCount; i++ {
		label := fmt.Sprintf(
			"%s - %s",
			hourLabel(openingHour+i),
			hourLabel(openingHour+i+1),
		)
		gridSet[label] = i
		grid = append(grid, label)
	}
}

func hourLabel(h int) string {
	suffix := "AM"
	display := h

	if h >= 12 {
		suffix = "PM"
		if h > 12 {
			display = h - 12
		}
	}

	return fmt.Sprintf("%02d:00 %s", display, suffix)
}

// Grid devolve os rótulos na ordem do dia (cópia defensiva).
func Grid() []string {
	out := make([]string, len(grid))
	copy(out, grid)
	return out
}

func IsValidSlot(label string) bool {
	_, ok := gridSet[label]
	return ok
}

func SlotIndex(label string) (int, bool) {
	i, ok := gridSet[label]
	return i, ok
}
