// Package progress provides console progress indicators.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	"golang.org/x/term"

	"github.com/databolaget/databolaget/internal/core/ports/driven"
)

// Ensure Spinner implements the interface.
var _ driven.ProgressIndicator = (*Spinner)(nil)

// DefaultInterval is the redraw interval of the spinner.
const DefaultInterval = 150 * time.Millisecond

// Spinner animates a single console line while a slow call runs.
//
// One goroutine owns the line between Start and Stop. Stop signals it,
// waits for it to exit and only then prints the final message, so no
// animation frame can follow the message.
type Spinner struct {
	out      io.Writer
	frames   []string
	interval time.Duration
	animate  bool

	mu      sync.Mutex
	running bool
	label   string
	stop    chan struct{}
	done    chan struct{}
}

// Option configures a Spinner.
type Option func(*Spinner)

// WithInterval sets the redraw interval.
func WithInterval(d time.Duration) Option {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithFrames replaces the animation frames.
func WithFrames(frames ...string) Option {
	return func(s *Spinner) {
		if len(frames) > 0 {
			s.frames = frames
		}
	}
}

// WithAnimation forces animation on or off. By default the spinner
// animates only when out is a terminal.
func WithAnimation(on bool) Option {
	return func(s *Spinner) {
		s.animate = on
	}
}

// New creates a spinner writing to out. It uses the bubbles line spinner
// frames: | / - \
func New(out io.Writer, opts ...Option) *Spinner {
	if out == nil {
		out = io.Discard
	}
	s := &Spinner{
		out:      out,
		frames:   spinner.Line.Frames,
		interval: DefaultInterval,
		animate:  isTerminal(out),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start shows label followed by a rotating frame. Without animation the
// label is printed once on its own line.
func (s *Spinner) Start(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.label = label

	if !s.animate {
		fmt.Fprintln(s.out, label)
		return
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.spin(label, s.stop, s.done)
}

// Stop ends the animation and prints message on the same line, padded to
// erase the previous frame. Calls without a running spinner do nothing.
func (s *Spinner) Stop(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	if !s.animate {
		fmt.Fprintln(s.out, message)
		return
	}

	close(s.stop)
	<-s.done

	pad := utf8.RuneCountInString(s.label) + 2 - utf8.RuneCountInString(message)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(s.out, "\r%s%s\n", message, strings.Repeat(" ", pad))
}

// Running reports whether the spinner is between Start and Stop.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Spinner) spin(label string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprintf(s.out, "\r%s %s", label, s.frames[i%len(s.frames)])
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

type fder interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
