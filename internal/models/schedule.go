package models

// DayOfWeek identifies one of the seven schedule days. Values match the
// keys of the JSON document returned by the generation service.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Days is the fixed iteration order for the week.
var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayLabels = map[DayOfWeek]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Label returns the display name for the day.
func (d DayOfWeek) Label() string {
	return dayLabels[d]
}

// Valid reports whether d is one of the seven schedule days.
func (d DayOfWeek) Valid() bool {
	_, ok := dayLabels[d]
	return ok
}

// ShiftType identifies one of the three 8-hour shifts. Values match the
// keys used inside each day of the generated schedule document.
type ShiftType string

const (
	DayShift     ShiftType = "dayShift"
	EveningShift ShiftType = "eveningShift"
	NightShift   ShiftType = "nightShift"
)

// Shifts is the fixed iteration order for the three shifts.
var Shifts = []ShiftType{DayShift, EveningShift, NightShift}

var shiftLabels = map[ShiftType]string{
	DayShift:     "Day Shift",
	EveningShift: "Evening Shift",
	NightShift:   "Night Shift",
}

var shiftHours = map[ShiftType]string{
	DayShift:     "08:00 - 16:00",
	EveningShift: "16:00 - 00:00",
	NightShift:   "00:00 - 08:00",
}

// Label returns the display name for the shift.
func (s ShiftType) Label() string {
	return shiftLabels[s]
}

// Hours returns the time range covered by the shift.
func (s ShiftType) Hours() string {
	return shiftHours[s]
}

// Valid reports whether s is one of the three shifts.
func (s ShiftType) Valid() bool {
	_, ok := shiftLabels[s]
	return ok
}

// DailySchedule holds the nurse names assigned to each shift of one day.
// Names are free text produced by the generation service and are not
// re-validated against the roster.
type DailySchedule struct {
	DayShift     []string `json:"dayShift"`
	EveningShift []string `json:"eveningShift"`
	NightShift   []string `json:"nightShift"`
}

// Assigned returns the names assigned to the given shift.
func (d *DailySchedule) Assigned(s ShiftType) []string {
	switch s {
	case DayShift:
		return d.DayShift
	case EveningShift:
		return d.EveningShift
	case NightShift:
		return d.NightShift
	}
	return nil
}

// Schedule maps each day of the week to its shift assignments. A schedule
// that passed shape validation contains all seven days.
type Schedule map[DayOfWeek]*DailySchedule
