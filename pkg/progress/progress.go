package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Spinner is a terminal progress spinner used while waiting on the
// network.
type Spinner struct {
	mu       sync.Mutex
	writer   io.Writer
	frames   []string
	message  string
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewSpinner creates a spinner with default frames. Output goes to
// stderr so it never mixes with rendered article output.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		writer:  os.Stderr,
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		message: message,
	}
}

// SetWriter sets a custom writer for the spinner.
func (s *Spinner) SetWriter(w io.Writer) {
	s.writer = w
}

// Start starts the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go s.animate()
}

// Stop stops the spinner and clears its line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	fmt.Fprintf(s.writer, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
	s.mu.Unlock()
}

func (s *Spinner) animate() {
	defer s.wg.Done()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frameIndex := 0
	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			fmt.Fprintf(s.writer, "\r%s %s", s.frames[frameIndex], s.message)
			s.mu.Unlock()
			frameIndex = (frameIndex + 1) % len(s.frames)
		}
	}
}
