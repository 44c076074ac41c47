package models

// NursePreferences captures what a nurse has asked for when the week is
// scheduled. PreferredShifts is a set (no duplicates, order irrelevant).
// A day present in UnavailableDays means the nurse cannot work that day;
// the value is an optional free-text reason, empty string included.
type NursePreferences struct {
	PreferredShifts []ShiftType          `json:"preferred_shifts"`
	UnavailableDays map[DayOfWeek]string `json:"unavailable_days"`
}

// NewPreferences returns an empty preference set.
func NewPreferences() NursePreferences {
	return NursePreferences{
		PreferredShifts: []ShiftType{},
		UnavailableDays: map[DayOfWeek]string{},
	}
}

// PrefersShift reports whether s is in the preferred-shift set.
func (p NursePreferences) PrefersShift(s ShiftType) bool {
	for _, ps := range p.PreferredShifts {
		if ps == s {
			return true
		}
	}
	return false
}

// IsUnavailable reports whether the nurse has marked day as unavailable.
func (p NursePreferences) IsUnavailable(day DayOfWeek) bool {
	_, ok := p.UnavailableDays[day]
	return ok
}

// IsDefault reports whether the nurse has no preferences at all.
func (p NursePreferences) IsDefault() bool {
	return len(p.PreferredShifts) == 0 && len(p.UnavailableDays) == 0
}

// Clone returns a deep copy so callers can mutate it without aliasing the
// original.
func (p NursePreferences) Clone() NursePreferences {
	c := NursePreferences{
		PreferredShifts: make([]ShiftType, len(p.PreferredShifts)),
		UnavailableDays: make(map[DayOfWeek]string, len(p.UnavailableDays)),
	}
	copy(c.PreferredShifts, p.PreferredShifts)
	for d, reason := range p.UnavailableDays {
		c.UnavailableDays[d] = reason
	}
	return c
}

// Nurse is one roster entry. The ID is assigned on add and never changes.
type Nurse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Preferences NursePreferences `json:"preferences"`
}

// Clone returns a deep copy of the nurse.
func (n Nurse) Clone() Nurse {
	return Nurse{ID: n.ID, Name: n.Name, Preferences: n.Preferences.Clone()}
}
