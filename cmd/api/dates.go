package main

import (
	"fmt"
	"time"

	"nurse-roster/internal/models"
)

// The displayed week is pinned to the first Monday of September of the
// current year, matching the ward's planning convention.

func firstMondayOfSeptember(year int) time.Time {
	d := time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// weekDateLabels maps each schedule day to a short "M/D (Mon)" header.
func weekDateLabels(now time.Time) map[models.DayOfWeek]string {
	monday := firstMondayOfSeptember(now.Year())

	labels := make(map[models.DayOfWeek]string, len(models.Days))
	for i, day := range models.Days {
		d := monday.AddDate(0, 0, i)
		labels[day] = fmt.Sprintf("%d/%d (%s)", int(d.Month()), d.Day(), d.Weekday().String()[:3])
	}
	return labels
}
