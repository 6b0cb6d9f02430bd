package health

import (
	"sync"
	"time"
)

// Tracker maintains an in-process success rate for the payment gateway and
// exposes it to the health endpoint. Unlike a circuit breaker it never blocks
// calls; it only reports.
type Tracker struct {
	mu       sync.Mutex
	strategy SuccessRateStrategy
	rate     float64
	lastCall time.Time
	lastErr  string
}

func NewTracker(strategy SuccessRateStrategy) *Tracker {
	return &Tracker{strategy: strategy, rate: 100}
}

func (t *Tracker) Record(success bool, errMsg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rate = t.strategy.Update(t.rate, success)
	t.lastCall = time.Now()
	if success {
		t.lastErr = ""
	} else {
		t.lastErr = errMsg
	}
}

type Snapshot struct {
	SuccessRate float64   `json:"success_rate"`
	LastCall    time.Time `json:"last_call"`
	LastError   string    `json:"last_error,omitempty"`
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{SuccessRate: t.rate, LastCall: t.lastCall, LastError: t.lastErr}
}
