// Package synth defines the contract between the batch runner and
// speech-synthesis engines.
package synth

import (
	"context"
	"errors"
)

// Common synthesis errors
var (
	// ErrEmptyText indicates an empty string was submitted for synthesis
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrTextTooLong indicates the text exceeds the engine's size limit
	ErrTextTooLong = errors.New("text exceeds maximum size")

	// ErrNoAudio indicates the service completed without returning audio
	ErrNoAudio = errors.New("service returned no audio")
)

// Synthesizer converts a text item into encoded audio bytes. Engines speak
// with a single fixed voice selected at construction time; the batch
// runner never varies voice per item.
type Synthesizer interface {
	// Synthesize converts text to audio. The returned bytes are a complete
	// encoded file (MP3 for the Edge engine). Implementations must bound
	// the call with their own timeout.
	Synthesize(ctx context.Context, text string) ([]byte, error)

	// VoiceInfo returns the voice and format the engine produces.
	VoiceInfo() VoiceInfo

	// Close releases any resources held by the engine.
	Close() error
}

// VoiceInfo describes an engine's fixed voice and output format.
type VoiceInfo struct {
	Voice    string // Voice identifier (e.g. "ko-KR-SunHiNeural")
	Locale   string // BCP-47 locale the voice speaks (e.g. "ko-KR")
	Format   string // Output audio format identifier
	IsOnline bool   // Whether synthesis requires internet
}
