// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the slidemerge CLI. Run with no
// arguments it merges the course's lecture decks into one document.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the slidemerge CLI.
var rootCmd = &cobra.Command{
	Use:   "slidemerge",
	Short: "Merge per-lecture Beamer decks into one LaTeX document",
	Long: `slidemerge concatenates lecture1/Lecture1.tex through lectureN/LectureN.tex
into a single standalone document. The preamble comes from lecture 1; each
lecture body has its recap frame removed, its figure paths and outline
rewritten, and a part header prepended.

Without a subcommand it runs merge with the default settings: lectures are
read from the parent of the working directory and AllLectures_merged.tex is
written into the working directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMerge,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidemerge.yaml or ~/.config/slidemerge/config.yaml)")
	addMergeFlags(rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidemerge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slidemerge"))
		}
	}

	viper.SetEnvPrefix("SLIDEMERGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
