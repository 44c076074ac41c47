package schedule

import "nurse-roster/internal/models"

// scheduleResponseSchema builds the structured-output schema sent with the
// generation request: an object with the 7 day keys required, each an object
// with the 3 shift keys required, each an array of strings.
func scheduleResponseSchema() map[string]interface{} {
	stringArray := func() map[string]interface{} {
		return map[string]interface{}{
			"type":  "ARRAY",
			"items": map[string]interface{}{"type": "STRING"},
		}
	}

	shiftKeys := make([]string, len(models.Shifts))
	dayProps := make(map[string]interface{}, len(models.Days))
	for i, shift := range models.Shifts {
		shiftKeys[i] = string(shift)
	}
	for _, day := range models.Days {
		props := make(map[string]interface{}, len(models.Shifts))
		for _, shift := range models.Shifts {
			props[string(shift)] = stringArray()
		}
		dayProps[string(day)] = map[string]interface{}{
			"type":       "OBJECT",
			"properties": props,
			"required":   shiftKeys,
		}
	}

	dayKeys := make([]string, len(models.Days))
	for i, day := range models.Days {
		dayKeys[i] = string(day)
	}

	return map[string]interface{}{
		"type":       "OBJECT",
		"properties": dayProps,
		"required":   dayKeys,
	}
}
