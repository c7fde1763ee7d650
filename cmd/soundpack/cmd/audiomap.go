package cmd

import (
	"fmt"

	"github.com/corey/soundpack/internal/adapters/bbolt"
	"github.com/corey/soundpack/internal/adapters/beep"
	"github.com/corey/soundpack/internal/app"
	"github.com/corey/soundpack/internal/domain/manifest"
	"github.com/corey/soundpack/internal/logger"
	"github.com/corey/soundpack/internal/ports"
	"github.com/spf13/cobra"
)

// Default layout for the composite variant.
const (
	defaultAssetSoundDir = "assets/sounds"
	defaultBackingDir    = "assets/backing_tracks"
	audiomapOutFile      = "audiomap.json"
)

var (
	amSoundDir   string
	amBackingDir string
	amOut        string
	amNoCache    bool
)

var audiomapCmd = &cobra.Command{
	Use:   "audiomap",
	Short: "Build the composite audio manifest",
	Long:  "Scans the sound and backing-track directories, probes mp3 durations, and writes audiomap.json.",
	RunE:  runAudiomap,
}

func init() {
	f := audiomapCmd.Flags()
	f.StringVar(&amSoundDir, "dir", defaultAssetSoundDir, "Sound directory to scan")
	f.StringVar(&amBackingDir, "backing-dir", defaultBackingDir, "Backing-track directory to scan")
	f.StringVar(&amOut, "out", audiomapOutFile, "Output manifest path")
	f.BoolVar(&amNoCache, "no-cache", false, "Decode every mp3 instead of using the duration cache")
}

// newProber returns the duration prober, wrapped in the persistent decode
// cache unless --no-cache is set. Cache setup failure falls back to plain
// probing — a slow build beats a failed one.
func newProber(root string) (ports.DurationProber, func()) {
	base := beep.NewProber()
	if amNoCache {
		return base, func() {}
	}
	paths := app.NewPaths(root)
	if err := paths.EnsureDirs(); err != nil {
		logger.Debug("duration cache disabled", "error", err)
		return base, func() {}
	}
	cache, err := bbolt.NewCache(paths.DB)
	if err != nil {
		logger.Debug("duration cache disabled", "error", err)
		return base, func() {}
	}
	return app.NewCachingProber(base, cache), func() { cache.Close() }
}

func runAudiomap(cmd *cobra.Command, args []string) error {
	prober, done := newProber(projectRoot())
	defer done()

	backing, sounds, err := manifest.BuildAudioMap(amSoundDir, amBackingDir, amOut, prober)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s with %d backing tracks and %d sounds\n", amOut, backing, sounds)
	return nil
}
