// Package mock provides a mock synthesis engine for testing.
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/koreanquiz/speechgen/internal/synth"
)

// Engine implements the Synthesizer interface for testing. It records
// every call and can be configured to fail for specific items.
type Engine struct {
	mu sync.Mutex

	// Configuration
	voice string
	delay time.Duration // Simulated network delay

	// Control for testing
	failWith map[string]error

	// State
	calls []string
}

// New creates a new mock engine.
func New() *Engine {
	return &Engine{
		voice:    "mock-voice",
		failWith: make(map[string]error),
	}
}

// SetDelay configures a simulated per-call delay.
func (e *Engine) SetDelay(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.delay = d
}

// FailWith makes synthesis of the given text return err.
func (e *Engine) FailWith(text string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failWith[text] = err
}

// Calls returns the texts submitted for synthesis, in order.
func (e *Engine) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]string, len(e.calls))
	copy(out, e.calls)
	return out
}

// CallCount returns the number of synthesis calls made.
func (e *Engine) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

// Synthesize simulates audio generation. The returned bytes are
// deterministic per text so tests can verify what was written.
func (e *Engine) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, synth.ErrEmptyText
	}

	e.mu.Lock()
	e.calls = append(e.calls, text)
	err := e.failWith[text]
	delay := e.delay
	e.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return []byte("mp3:" + text), nil
}

// VoiceInfo returns a fixed mock voice description.
func (e *Engine) VoiceInfo() synth.VoiceInfo {
	return synth.VoiceInfo{
		Voice:    e.voice,
		Locale:   "ko-KR",
		Format:   "audio/mock",
		IsOnline: false,
	}
}

// Close releases nothing; the mock holds no resources.
func (e *Engine) Close() error {
	return nil
}

// Ensure Engine implements the Synthesizer interface
var _ synth.Synthesizer = (*Engine)(nil)
