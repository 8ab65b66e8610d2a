// Package entity contains the core business objects of the project.
package entity

// Period is the time-of-day slot a delivery is grouped under. Reordering is
// always local to one period; a delivery with no period forms its own group.
type Period string

const (
	// PeriodMorning is the "Manhã" slot.
	PeriodMorning Period = "Manhã"
	// PeriodAfternoon is the "Tarde" slot.
	PeriodAfternoon Period = "Tarde"
	// PeriodUnset marks deliveries that were never assigned a slot.
	PeriodUnset Period = ""
)

// String returns the string representation of the Period.
func (p Period) String() string {
	return string(p)
}

// IsValid checks if the Period is a valid value. The empty value is valid.
func (p Period) IsValid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodUnset:
		return true
	default:
		return false
	}
}
