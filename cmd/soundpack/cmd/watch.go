package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/corey/soundpack/internal/adapters/fsnotify"
	"github.com/corey/soundpack/internal/domain/manifest"
	"github.com/corey/soundpack/internal/logger"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [soundlist|audiomap]",
	Short: "Rebuild a manifest whenever its source directories change",
	Long:  "Runs the named variant once, then watches its default directories and rebuilds on every change. Stop with Ctrl-C.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	var dirs []string
	var rebuild func() error

	switch args[0] {
	case "soundlist":
		dirs = []string{soundlistDir}
		rebuild = func() error {
			n, err := manifest.BuildSoundlist(soundlistDir, soundlistOut)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s with %d sounds\n", soundlistOut, n)
			return nil
		}
	case "audiomap":
		prober, done := newProber(projectRoot())
		defer done()
		dirs = []string{amSoundDir, amBackingDir}
		rebuild = func() error {
			backing, sounds, err := manifest.BuildAudioMap(amSoundDir, amBackingDir, amOut, prober)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s with %d backing tracks and %d sounds\n", amOut, backing, sounds)
			return nil
		}
	default:
		return fmt.Errorf("unknown variant %q (want soundlist or audiomap)", args[0])
	}

	// A missing source directory is fatal up front, same as a one-shot run.
	if err := rebuild(); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	events := make(chan string, 16)
	err = w.Watch(dirs, func(path string) {
		select {
		case events <- path:
		default:
		}
	})
	if err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	logger.Info("watching", "dirs", strings.Join(dirs, ", "))
	for {
		select {
		case path := <-events:
			logger.Debug("change detected", "path", path)
			if err := rebuild(); err != nil {
				logger.Error("rebuild failed", "error", err)
			}
		case <-sig:
			return nil
		}
	}
}
