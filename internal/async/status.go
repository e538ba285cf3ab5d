// Package async loads the catalog off the interactive goroutine and
// tracks its progress.
package async

import (
	"sync"
	"time"
)

// LoadStatus is the overall load state.
type LoadStatus string

const (
	// StatusLoading indicates the catalog is still being read.
	StatusLoading LoadStatus = "loading"
	// StatusReady indicates the catalog is indexed and searchable.
	StatusReady LoadStatus = "ready"
	// StatusError indicates the load failed. There is no retry.
	StatusError LoadStatus = "error"
)

// LoadStage is the current step of a load in progress.
type LoadStage string

const (
	// StageReading covers file IO and decoding.
	StageReading LoadStage = "reading"
	// StageIndexing covers grouping by set and section.
	StageIndexing LoadStage = "indexing"
	// StageDone is reported once the load has finished either way.
	StageDone LoadStage = "done"
)

// Snapshot is an immutable copy of load progress.
type Snapshot struct {
	Status    string `json:"status"`
	Stage     string `json:"stage"`
	Source    string `json:"source,omitempty"`
	Sets      int    `json:"sets"`
	Groups    int    `json:"groups"`
	Icons     int    `json:"icons"`
	ElapsedMS int64  `json:"elapsed_ms"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// Ready reports whether the catalog is usable.
func (s Snapshot) Ready() bool {
	return s.Status == string(StatusReady)
}

// Progress is a thread-safe load progress tracker.
type Progress struct {
	mu sync.RWMutex

	status    LoadStatus
	stage     LoadStage
	source    string
	sets      int
	groups    int
	icons     int
	startTime time.Time
	endTime   time.Time
	errMsg    string
	errCode   string
}

// NewProgress creates a tracker in the loading state.
func NewProgress(source string) *Progress {
	return &Progress{
		status:    StatusLoading,
		stage:     StageReading,
		source:    source,
		startTime: time.Now(),
	}
}

// SetStage records the current stage.
func (p *Progress) SetStage(stage LoadStage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stage = stage
}

// SetReady marks the load complete with the final counts.
func (p *Progress) SetReady(sets, groups, icons int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = StatusReady
	p.stage = StageDone
	p.sets, p.groups, p.icons = sets, groups, icons
	p.endTime = time.Now()
}

// SetError marks the load as failed.
func (p *Progress) SetError(message, code string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = StatusError
	p.stage = StageDone
	p.errMsg = message
	p.errCode = code
	p.endTime = time.Now()
}

// IsLoading returns true while the load is in progress.
func (p *Progress) IsLoading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status == StatusLoading
}

// Snapshot returns an immutable copy of the current state. Elapsed time
// stops counting once the load finishes.
func (p *Progress) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	end := p.endTime
	if end.IsZero() {
		end = time.Now()
	}
	return Snapshot{
		Status:    string(p.status),
		Stage:     string(p.stage),
		Source:    p.source,
		Sets:      p.sets,
		Groups:    p.groups,
		Icons:     p.icons,
		ElapsedMS: end.Sub(p.startTime).Milliseconds(),
		Error:     p.errMsg,
		ErrorCode: p.errCode,
	}
}
