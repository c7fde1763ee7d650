package ports

// DurationProber reads the playing time of a compressed audio file.
// The concrete implementation (beep's mp3 decoder) lives in
// internal/adapters/beep.
type DurationProber interface {
	// Probe returns the duration of the audio file at path, in seconds.
	// An error means the file could not be opened or its frames could not
	// be decoded; callers decide whether that is fatal.
	Probe(path string) (float64, error)
}
