package client

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before a search is committed.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer holds the text being typed and commits it once input has been quiet for
// the interval. Every Input inside the window restarts the timer (trailing edge).
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	commit   func(string)
	text     string
	timer    *time.Timer
	gen      uint64 // bumps on every Input; a timer only fires for its own generation
	stopped  bool
	running  sync.WaitGroup // commits in progress
}

// NewDebouncer starts with initial as the current text. The initial value is read once;
// it is never re-synced afterwards. interval <= 0 means DefaultDebounce.
func NewDebouncer(initial string, interval time.Duration, commit func(string)) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Debouncer{interval: interval, commit: commit, text: initial}
}

// Input records a keystroke's worth of text and restarts the quiet period.
func (d *Debouncer) Input(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text = text
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.interval, func() { d.fire(gen) })
}

// Text is the current (possibly uncommitted) text, for display.
func (d *Debouncer) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Stop cancels any pending commit and waits for a commit already running, so no
// callback runs after Stop returns. It must not be called from the commit callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.running.Wait()
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	text := d.text
	d.running.Add(1)
	d.mu.Unlock()
	defer d.running.Done()
	d.commit(text)
}
