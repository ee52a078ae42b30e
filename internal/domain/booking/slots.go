package booking

// TimeSlot is one bookable window. Value is the slot start ("15:04"),
// stored on the booking; Display is what clients render.
type TimeSlot struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

// Fixed daily template of five 2-hour slots, shop local time. Not
// configurable per barber.
var slotTemplate = []TimeSlot{
	{Value: "08:00", Display: "8:00am-10:00am"},
	{Value: "10:00", Display: "10:00am-12:00pm"},
	{Value: "13:00", Display: "1:00pm-3:00pm"},
	{Value: "15:00", Display: "3:00pm-5:00pm"},
	{Value: "17:00", Display: "5:00pm-7:00pm"},
}

func SlotTemplate() []TimeSlot {
	out := make([]TimeSlot, len(slotTemplate))
	copy(out, slotTemplate)
	return out
}

// IsSlotStart reports whether hm matches a template slot start.
func IsSlotStart(hm string) bool {
	for _, s := range slotTemplate {
		if s.Value == hm {
			return true
		}
	}
	return false
}

// AvailableSlots filters the template down to slots whose start is not in
// occupied, preserving template order. Occupied times outside the template
// are ignored; no slot is ever synthesized.
func AvailableSlots(occupied []string) []TimeSlot {
	taken := make(map[string]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	available := make([]TimeSlot, 0, len(slotTemplate))
	for _, s := range slotTemplate {
		if _, ok := taken[s.Value]; !ok {
			available = append(available, s)
		}
	}
	return available
}
