package roster

import "nurse-roster/internal/models"

// Draft is a local working copy of one nurse's preferences. It is seeded
// from the nurse's current preferences and mutates nothing in the store;
// the caller commits the result via Store.Replace, or just drops the draft
// to cancel.
type Draft struct {
	nurse models.Nurse
	prefs models.NursePreferences
}

// NewDraft seeds a draft from the nurse's current preferences.
func NewDraft(nurse models.Nurse) *Draft {
	return &Draft{
		nurse: nurse.Clone(),
		prefs: nurse.Preferences.Clone(),
	}
}

// ToggleShift adds the shift to the preferred set if absent and removes it
// if present.
func (d *Draft) ToggleShift(shift models.ShiftType) {
	for i, s := range d.prefs.PreferredShifts {
		if s == shift {
			d.prefs.PreferredShifts = append(d.prefs.PreferredShifts[:i], d.prefs.PreferredShifts[i+1:]...)
			return
		}
	}
	d.prefs.PreferredShifts = append(d.prefs.PreferredShifts, shift)
}

// ToggleDay marks the day unavailable with an empty reason, or clears it
// when it is already marked.
func (d *Draft) ToggleDay(day models.DayOfWeek) {
	if _, ok := d.prefs.UnavailableDays[day]; ok {
		delete(d.prefs.UnavailableDays, day)
		return
	}
	d.prefs.UnavailableDays[day] = ""
}

// SetReason overwrites the reason for a day already marked unavailable.
// Setting a reason for a day that is not marked is rejected: the draft is
// untouched and false is returned. Mark the day first.
func (d *Draft) SetReason(day models.DayOfWeek, reason string) bool {
	if _, ok := d.prefs.UnavailableDays[day]; !ok {
		return false
	}
	d.prefs.UnavailableDays[day] = reason
	return true
}

// Preferences returns a copy of the draft's current state.
func (d *Draft) Preferences() models.NursePreferences {
	return d.prefs.Clone()
}

// Nurse returns the full nurse carrying the drafted preferences, with id
// and name unchanged. This is what gets committed on save.
func (d *Draft) Nurse() models.Nurse {
	n := d.nurse.Clone()
	n.Preferences = d.prefs.Clone()
	return n
}
