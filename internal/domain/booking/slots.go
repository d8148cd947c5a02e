package booking

import "time"

const (
	firstSlotHour = 9
	lastSlotHour  = 17
	slotLayout    = "03:04 PM"
)

var canonicalSlots = buildSlots()

func buildSlots() []string {
	slots := make([]string, 0, lastSlotHour-firstSlotHour+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		slots = append(slots, time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC).Format(slotLayout))
	}
	return slots
}

// CanonicalSlots returns a copy of the daily slot labels, "09:00 AM" through "05:00 PM".
func CanonicalSlots() []string {
	out := make([]string, len(canonicalSlots))
	copy(out, canonicalSlots)
	return out
}
