package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/easybox/pkg/observability"
	"github.com/matzehuels/easybox/pkg/pointer"
	"github.com/matzehuels/easybox/pkg/position"
)

// logHooks reports drag and layout activity to a logger. Moves and position
// reads are frequent, so they log at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnDragStart(boxID string, at pointer.Reading) {
	h.logger.Debug("drag start", "box", boxID, "x", at.X, "y", at.Y)
}

func (h logHooks) OnDragMove(boxID string, shown position.Point) {
	h.logger.Debug("drag", "box", boxID, "left", shown.Left, "top", shown.Top)
}

func (h logHooks) OnDragEnd(boxID string, release pointer.Reading, final position.Point, moved bool) {
	if !moved {
		h.logger.Debug("drag end without movement", "box", boxID)
		return
	}
	h.logger.Info("dropped", "box", boxID, "left", final.Left, "top", final.Top)
}

func (h logHooks) OnPositionRead(boxID string, p position.Point, ok bool) {
	if !ok {
		h.logger.Debug("position read", "box", boxID, "position", "none")
		return
	}
	h.logger.Debug("position read", "box", boxID, "left", p.Left, "top", p.Top)
}

func (h logHooks) OnRepack(boxID string, moved int, d time.Duration) {
	h.logger.Debug("repack", "trigger", boxID, "moved", moved, "took", d)
}

// installHooks routes observability events to logger until the returned
// function is called.
func installHooks(logger *log.Logger) (restore func()) {
	h := logHooks{logger: logger}
	observability.SetDragHooks(h)
	observability.SetLayoutHooks(h)
	return observability.Reset
}

// requestStats counts API responses by status class.
type requestStats struct {
	mu      sync.Mutex
	total   int
	byClass map[int]int
	slowest time.Duration
}

func newRequestStats() *requestStats {
	return &requestStats{byClass: make(map[int]int)}
}

func (s *requestStats) OnRequest(context.Context, string, string) {}

func (s *requestStats) OnResponse(_ context.Context, _, _ string, status int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.byClass[status/100]++
	s.slowest = max(s.slowest, d)
}

// summary formats the counts as "12 requests · 10 ok · 2 client errors".
func (s *requestStats) summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	parts := []string{fmt.Sprintf("%d requests", s.total)}
	for _, c := range []struct {
		class int
		name  string
	}{{2, "ok"}, {4, "client errors"}, {5, "server errors"}} {
		if n := s.byClass[c.class]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, c.name))
		}
	}
	if s.total > 0 {
		parts = append(parts, "slowest "+s.slowest.Round(time.Microsecond).String())
	}
	return strings.Join(parts, " · ")
}
