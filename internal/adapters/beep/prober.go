// Package beep implements the ports.DurationProber interface using gopxl/beep's
// mp3 decoder. The duration comes from decoding the frame stream rather than
// trusting container metadata, so VBR files report correctly.
package beep

import (
	"fmt"
	"os"

	"github.com/gopxl/beep/v2/mp3"
)

// Prober reads mp3 durations by decoding the frame stream.
type Prober struct{}

// NewProber creates a new mp3 duration prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe returns the duration of the mp3 file at path, in seconds.
// The file handle is released on every path: the decoder takes ownership of
// it on success and it is closed explicitly on decode failure.
func (p *Prober) Probe(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("decode mp3: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()).Seconds(), nil
}
