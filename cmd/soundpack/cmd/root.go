package cmd

import (
	"fmt"
	"os"

	"github.com/corey/soundpack/internal/logger"
	"github.com/spf13/cobra"
)

// verbose enables debug logging across all subcommands.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "soundpack",
	Short: "soundpack — audio asset manifest builder",
	Long:  "Scans sound and backing-track directories and writes a sorted JSON manifest for the client.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// projectRoot returns the directory manifests are built relative to (cwd).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.AddCommand(soundlistCmd)
	rootCmd.AddCommand(audiomapCmd)
	rootCmd.AddCommand(watchCmd)
}
