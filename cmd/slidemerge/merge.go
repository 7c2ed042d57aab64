// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidemerge/internal/merge"
	"github.com/pdiddy/slidemerge/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge lecture decks into a single document",
	Long: `Merge reads the preamble from lecture 1, appends the TikZ packages and the
pause-disabling macros, then appends every lecture body in ascending order.
Missing or malformed lectures are reported and skipped. A missing lecture 1
aborts the run without touching the output file.`,
	Args: cobra.NoArgs,
	RunE: runMerge,
}

// mergeFlags maps each merge flag to its viper key.
var mergeFlags = map[string]string{
	"count":        "count",
	"lectures-dir": "lectures_dir",
	"output":       "output",
	"report":       "report",
}

func init() {
	addMergeFlags(mergeCmd)

	rootCmd.AddCommand(mergeCmd)
}

func addMergeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("count", types.DefaultLectureCount, "number of lectures to merge, starting at 1")
	cmd.Flags().String("lectures-dir", "", "lectures root containing lectureN/ folders (default: parent of the working directory)")
	cmd.Flags().String("output", "", "merged output file (default: ./"+merge.DefaultOutputName+")")
	cmd.Flags().String("report", "", "write a YAML summary of the run to this path")
}

func runMerge(cmd *cobra.Command, args []string) error {
	for flag, key := range mergeFlags {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	cfg, err := mergeConfig()
	if err != nil {
		return err
	}

	if _, err := merge.MergeAll(cfg, os.Stdout); err != nil {
		return err
	}
	return nil
}

// mergeConfig assembles the run configuration from viper and fills unset
// paths by convention: output in the working directory, lectures one level up.
func mergeConfig() (types.MergeConfig, error) {
	var cfg types.MergeConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return cfg, fmt.Errorf("resolving working directory: %w", err)
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = filepath.Join(wd, merge.DefaultOutputName)
	}
	if cfg.LecturesDir == "" {
		cfg.LecturesDir = filepath.Dir(wd)
	}
	if cfg.OutputFile, err = filepath.Abs(cfg.OutputFile); err != nil {
		return cfg, fmt.Errorf("resolving output path: %w", err)
	}
	if cfg.LecturesDir, err = filepath.Abs(cfg.LecturesDir); err != nil {
		return cfg, fmt.Errorf("resolving lectures directory: %w", err)
	}
	return cfg, nil
}
