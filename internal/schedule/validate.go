package schedule

import (
	"encoding/json"
	"fmt"

	"nurse-roster/internal/models"
)

// ParseSchedule parses a raw generation response and checks its shape: all
// 7 day keys must be present and each day must carry all 3 shift keys.
// Nothing beyond the shape is checked; the names inside the arrays and the
// scheduling rules themselves are taken on trust.
func ParseSchedule(raw []byte) (models.Schedule, error) {
	var doc map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse schedule response: %w", err)
	}

	for _, day := range models.Days {
		dayDoc, ok := doc[string(day)]
		if !ok {
			return nil, fmt.Errorf("schedule response missing day %q", day)
		}
		for _, shift := range models.Shifts {
			if _, ok := dayDoc[string(shift)]; !ok {
				return nil, fmt.Errorf("schedule response missing shift %q for %q", shift, day)
			}
		}
	}

	var sched models.Schedule
	if err := json.Unmarshal(raw, &sched); err != nil {
		return nil, fmt.Errorf("decode schedule response: %w", err)
	}
	return sched, nil
}
