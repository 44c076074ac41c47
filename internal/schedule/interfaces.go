package schedule

import (
	"context"

	"nurse-roster/internal/models"
)

// Generator produces a full week's schedule for the given nurse list.
// Implementations take the list as a snapshot; later roster mutations must
// not affect a request already in flight.
type Generator interface {
	Generate(ctx context.Context, nurses []models.Nurse) (models.Schedule, error)
}
