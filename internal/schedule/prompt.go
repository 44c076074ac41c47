package schedule

import (
	"fmt"
	"strings"

	"nurse-roster/internal/models"
)

// formatPreferences summarizes per-nurse preferences for the prompt. Nurses
// with no preferences are omitted; when nobody has any, a fallback sentence
// is returned instead.
func formatPreferences(nurses []models.Nurse) string {
	var lines []string
	for _, nurse := range nurses {
		if nurse.Preferences.IsDefault() {
			continue
		}

		var parts []string
		if len(nurse.Preferences.PreferredShifts) > 0 {
			var names []string
			for _, shift := range models.Shifts {
				if nurse.Preferences.PrefersShift(shift) {
					names = append(names, shift.Label())
				}
			}
			parts = append(parts, "Preferred shifts: "+strings.Join(names, ", "))
		}
		if len(nurse.Preferences.UnavailableDays) > 0 {
			var days []string
			for _, day := range models.Days {
				reason, ok := nurse.Preferences.UnavailableDays[day]
				if !ok {
					continue
				}
				if reason != "" {
					days = append(days, fmt.Sprintf("%s (%s)", day.Label(), reason))
				} else {
					days = append(days, day.Label())
				}
			}
			parts = append(parts, "Unavailable days: "+strings.Join(days, ", "))
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", nurse.Name, strings.Join(parts, "; ")))
	}

	if len(lines) == 0 {
		return "There are no specific nurse preferences."
	}

	return fmt.Sprintf(`Nurse Preferences (Please try to accommodate these as much as possible while respecting all other rules):
%s`, strings.Join(lines, "\n"))
}

// BuildPrompt writes the full scheduling instruction sent to the generation
// model: the available nurses, their preferences and the ward's scheduling
// rules.
func BuildPrompt(nurses []models.Nurse) string {
	names := make([]string, len(nurses))
	for i, n := range nurses {
		names[i] = n.Name
	}

	return fmt.Sprintf(`You are an expert hospital ward shift scheduler. Your task is to create a 7-day (Monday to Sunday) nursing schedule for a 24-hour ward.

Available Nurses:
%s
Total nurses: %d

%s

Scheduling Rules & Constraints:
1.  Shifts: There are three 8-hour shifts per day:
    -   Day Shift: 08:00 - 16:00
    -   Evening Shift: 16:00 - 00:00
    -   Night Shift: 00:00 - 08:00
2.  Staffing: Each shift must be staffed by at least 2 nurses. If possible, aim for 2-3 nurses per shift.
3.  Fairness: Distribute shifts as evenly as possible among all available nurses over the week.
4.  Rest: Every nurse must have at least two full days off during the 7-day period. A day off means they are not assigned to any shift on that day.
5.  Safety: CRITICAL RULE - A nurse cannot be scheduled for a Day Shift on the day immediately following a Night Shift. This is to ensure adequate rest.
6.  Consistency: Only use the provided nurse names in the schedule. Do not assign a nurse to a day if it is listed as their unavailable day.

Output Format:
Provide the output STRICTLY as a JSON object that conforms to the provided schema. Do not include any introductory text, markdown formatting, or explanations. The entire response should be only the valid JSON object.`,
		strings.Join(names, ", "), len(nurses), formatPreferences(nurses))
}
