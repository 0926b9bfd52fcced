package ports

import (
	"time"

	"worldseed/internal/domain/terrain"
)

type GenerationMetrics interface {
	RecordSuccess(style terrain.Style, cells int, elapsed time.Duration)
	RecordFailure()
}
