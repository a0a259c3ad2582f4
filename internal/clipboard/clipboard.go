// Package clipboard writes calculator results to the system clipboard.
package clipboard

import (
	"fmt"
	"log/slog"
	"sync"

	xclipboard "golang.design/x/clipboard"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System is the OS clipboard. The underlying library is initialized lazily on
// first use and only once per process; an init failure (no display, missing
// X11 libraries) is returned by every subsequent write.
type System struct {
	once    sync.Once
	initErr error
}

// NewSystem returns the OS clipboard writer.
func NewSystem() *System {
	return &System{}
}

func (s *System) WriteText(text string) error {
	s.once.Do(func() {
		if err := xclipboard.Init(); err != nil {
			s.initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
			slog.Debug("system clipboard unavailable", "error", err)
		}
	})
	if s.initErr != nil {
		return s.initErr
	}

	// Write returns a channel that is closed once another program takes
	// ownership of the clipboard; nobody here cares about that.
	xclipboard.Write(xclipboard.FmtText, []byte(text))
	return nil
}

// Memory is an in-process clipboard for headless runs and tests.
type Memory struct {
	mu   sync.Mutex
	text string
	// Err, when set, is returned by every write.
	Err error
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

// Text returns the last successfully written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
