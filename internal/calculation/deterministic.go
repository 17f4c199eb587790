package calculation

import (
	"time"

	"github.com/google/uuid"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// idFunc generates quote identifiers.
var idFunc = uuid.NewString

// SetIDFunc overrides the quote id generator (use only in tests).
func SetIDFunc(f func() string) { idFunc = f }
