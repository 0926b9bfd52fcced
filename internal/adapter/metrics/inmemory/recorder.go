package inmemory

import (
	"sync"
	"time"

	"worldseed/internal/domain/terrain"
)

type Snapshot struct {
	GenerationTotal   uint64            `json:"generation_total"`
	GenerationSuccess uint64            `json:"generation_success"`
	GenerationFailure uint64            `json:"generation_failure"`
	CellsGenerated    uint64            `json:"cells_generated"`
	TotalDurationMS   uint64            `json:"total_duration_ms"`
	ByStyle           map[string]uint64 `json:"by_style"`
}

type Recorder struct {
	mu      sync.Mutex
	success uint64
	failure uint64
	cells   uint64
	elapsed time.Duration
	byStyle map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byStyle: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(style terrain.Style, cells int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.cells += uint64(cells)
	r.elapsed += elapsed
	r.byStyle[string(style)]++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		GenerationSuccess: r.success,
		GenerationFailure: r.failure,
		GenerationTotal:   r.success + r.failure,
		CellsGenerated:    r.cells,
		TotalDurationMS:   uint64(r.elapsed.Milliseconds()),
		ByStyle:           make(map[string]uint64, len(r.byStyle)),
	}
	for k, v := range r.byStyle {
		out.ByStyle[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
