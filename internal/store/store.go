// Package store provides the completion-marker storage for generated
// audio. A file's presence is the only state carried between runs.
package store

// Store is the capability the batch runner needs from audio storage.
// Keys are the exact item text; implementations map a key to one audio
// file. Exists is a read-only check used as the generation cache.
type Store interface {
	// Exists reports whether audio for the given text is already stored.
	Exists(text string) bool

	// Write stores audio for the given text, overwriting any previous
	// audio for the same text.
	Write(text string, data []byte) error

	// Count returns the number of audio files currently stored.
	Count() (int, error)
}
