package async

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func TestNewProgress_StartsLoading(t *testing.T) {
	p := NewProgress("icons.json")

	snap := p.Snapshot()
	assert.Equal(t, "loading", snap.Status)
	assert.Equal(t, "reading", snap.Stage)
	assert.Equal(t, "icons.json", snap.Source)
	assert.True(t, p.IsLoading())
	assert.False(t, snap.Ready())
}

func TestProgress_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		apply      func(p *Progress)
		wantStatus string
		wantStage  string
	}{
		{
			name:       "indexing",
			apply:      func(p *Progress) { p.SetStage(StageIndexing) },
			wantStatus: "loading",
			wantStage:  "indexing",
		},
		{
			name:       "ready",
			apply:      func(p *Progress) { p.SetReady(2, 3, 4) },
			wantStatus: "ready",
			wantStage:  "done",
		},
		{
			name:       "error",
			apply:      func(p *Progress) { p.SetError("boom", "ERR_206_CATALOG_MALFORMED") },
			wantStatus: "error",
			wantStage:  "done",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress("")
			tt.apply(p)

			snap := p.Snapshot()
			assert.Equal(t, tt.wantStatus, snap.Status)
			assert.Equal(t, tt.wantStage, snap.Stage)
		})
	}
}

func TestProgress_ElapsedFreezesWhenDone(t *testing.T) {
	p := NewProgress("")
	time.Sleep(5 * time.Millisecond)
	p.SetReady(1, 1, 1)

	first := p.Snapshot().ElapsedMS
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, first, p.Snapshot().ElapsedMS)
}

func TestProgress_ConcurrentAccess(t *testing.T) {
	p := NewProgress("")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.SetStage(StageIndexing)
		}()
		go func() {
			defer wg.Done()
			_ = p.Snapshot()
		}()
	}
	wg.Wait()
	p.SetReady(1, 2, 3)

	snap := p.Snapshot()
	assert.Equal(t, 1, snap.Sets)
	assert.Equal(t, 2, snap.Groups)
	assert.Equal(t, 3, snap.Icons)
}
