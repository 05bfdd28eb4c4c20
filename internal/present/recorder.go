package present

import (
	"sync"

	"sunwatch/internal/types"
)

// Outcome is what a Recorder last saw
type Outcome struct {
	Presented bool
	Success   bool
	Today     types.DayRecord
	Tomorrow  types.DayRecord
	Timezone  string
	Message   string
	Resets    int
}

// Recorder keeps the last presented outcome
type Recorder struct {
	mu      sync.Mutex
	outcome Outcome // GUARDED_BY(mu)
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ShowSuccess(today, tomorrow types.DayRecord, timezone string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcome = Outcome{
		Presented: true,
		Success:   true,
		Today:     today,
		Tomorrow:  tomorrow,
		Timezone:  timezone,
		Resets:    r.outcome.Resets,
	}
}

func (r *Recorder) ShowError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcome = Outcome{
		Presented: true,
		Message:   message,
		Resets:    r.outcome.Resets,
	}
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcome = Outcome{Resets: r.outcome.Resets + 1}
}

// Outcome returns a copy of the last outcome
func (r *Recorder) Outcome() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome
}
