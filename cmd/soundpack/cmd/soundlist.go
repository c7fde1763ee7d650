package cmd

import (
	"fmt"

	"github.com/corey/soundpack/internal/domain/manifest"
	"github.com/spf13/cobra"
)

// Default layout for the flat variant. The tool is normally invoked bare
// from the asset root, so these stay constants rather than config.
const (
	defaultSoundDir  = "sounds"
	soundlistOutFile = "soundlist.json"
)

var (
	soundlistDir string
	soundlistOut string
)

var soundlistCmd = &cobra.Command{
	Use:   "soundlist",
	Short: "Build the flat sound manifest",
	Long:  "Scans the sound directory for .wav files, resolves sibling icons, and writes soundlist.json.",
	RunE:  runSoundlist,
}

func init() {
	f := soundlistCmd.Flags()
	f.StringVar(&soundlistDir, "dir", defaultSoundDir, "Sound directory to scan")
	f.StringVar(&soundlistOut, "out", soundlistOutFile, "Output manifest path")
}

func runSoundlist(cmd *cobra.Command, args []string) error {
	n, err := manifest.BuildSoundlist(soundlistDir, soundlistOut)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s with %d sounds\n", soundlistOut, n)
	return nil
}
