package report

import "github.com/trezcool/portal/core/subject"

var (
	Days      = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	SlotTimes = []string{
		"9:00 - 10:00",
		"10:00 - 11:00",
		"11:00 - 12:00",
		"12:00 - 1:00",
		"1:00 - 2:00",
		"2:00 - 3:00",
		"3:00 - 4:00",
	}
)

// LunchSlot is the index of the lunch break in SlotTimes.
const LunchSlot = 3

// Slot is a row of the timetable. Cells holds one subject per day, nil for a free period.
type Slot struct {
	Time  string             `json:"time"`
	Lunch bool               `json:"lunch"`
	Cells []*subject.Subject `json:"cells"`
}

// Timetable rotates subjects over the week: slot i on day d teaches subjects[(i+d) % len(subjects)].
func Timetable(subjects []subject.Subject) []Slot {
	slots := make([]Slot, 0, len(SlotTimes))
	for i, time := range SlotTimes {
		slot := Slot{Time: time}
		if i == LunchSlot {
			slot.Lunch = true
			slots = append(slots, slot)
			continue
		}
		slot.Cells = make([]*subject.Subject, len(Days))
		if len(subjects) > 0 {
			for d := range Days {
				slot.Cells[d] = &subjects[(i+d)%len(subjects)]
			}
		}
		slots = append(slots, slot)
	}
	return slots
}
