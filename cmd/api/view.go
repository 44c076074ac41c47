package main

import (
	"time"

	"nurse-roster/internal/models"
)

// offDutyDefaultReason labels an unavailable day that carries no reason.
const offDutyDefaultReason = "Resting"

// Data structs for UI

type ShiftCell struct {
	Shift models.ShiftType
	Label string
	Hours string
	Names []string
}

type OffDutyEntry struct {
	Name   string
	Reason string
}

type DayColumn struct {
	Day       models.DayOfWeek
	Label     string
	DateLabel string
	Weekend   bool
	Shifts    []ShiftCell
	OffDuty   []OffDutyEntry
}

type DayOption struct {
	Day       models.DayOfWeek
	Label     string
	DateLabel string
}

type ShiftOption struct {
	Shift models.ShiftType
	Label string
}

type RosterPageData struct {
	Nurses     []models.Nurse
	AddError   string
	AddName    string
	Generating bool
	GenError   string
	Schedule   []DayColumn
	DayOptions []DayOption
	Shifts     []ShiftOption
}

// buildScheduleView assembles the display grid for a generated schedule.
// The off-duty panel is derived from the live nurse list, not from the
// schedule response, so annotations follow the current preferences even
// when the schedule on screen predates the latest edit.
func buildScheduleView(sched models.Schedule, nurses []models.Nurse, now time.Time) []DayColumn {
	labels := weekDateLabels(now)

	columns := make([]DayColumn, 0, len(models.Days))
	for _, day := range models.Days {
		col := DayColumn{
			Day:       day,
			Label:     day.Label(),
			DateLabel: labels[day],
			Weekend:   day == models.Saturday || day == models.Sunday,
		}

		daily := sched[day]
		for _, shift := range models.Shifts {
			cell := ShiftCell{
				Shift: shift,
				Label: shift.Label(),
				Hours: shift.Hours(),
			}
			if daily != nil {
				cell.Names = daily.Assigned(shift)
			}
			col.Shifts = append(col.Shifts, cell)
		}

		for _, nurse := range nurses {
			reason, ok := nurse.Preferences.UnavailableDays[day]
			if !ok {
				continue
			}
			if reason == "" {
				reason = offDutyDefaultReason
			}
			col.OffDuty = append(col.OffDuty, OffDutyEntry{Name: nurse.Name, Reason: reason})
		}

		columns = append(columns, col)
	}
	return columns
}

func dayOptions(now time.Time) []DayOption {
	labels := weekDateLabels(now)
	opts := make([]DayOption, 0, len(models.Days))
	for _, day := range models.Days {
		opts = append(opts, DayOption{Day: day, Label: day.Label(), DateLabel: labels[day]})
	}
	return opts
}

func shiftOptions() []ShiftOption {
	opts := make([]ShiftOption, 0, len(models.Shifts))
	for _, shift := range models.Shifts {
		opts = append(opts, ShiftOption{Shift: shift, Label: shift.Label()})
	}
	return opts
}
