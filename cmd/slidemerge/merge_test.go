// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/slidemerge/internal/merge"
	"github.com/pdiddy/slidemerge/pkg/types"
)

func TestMergeConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := t.TempDir()
	wd := filepath.Join(root, "lectures_merged")
	require.NoError(t, os.Mkdir(wd, 0o755))
	prevWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	// Resolve symlinks such as /tmp -> /private/tmp.
	wd, err = os.Getwd()
	require.NoError(t, err)

	cfg, err := mergeConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, merge.DefaultOutputName), cfg.OutputFile)
	assert.Equal(t, filepath.Dir(wd), cfg.LecturesDir)
	assert.Equal(t, types.DefaultLectureCount, cfg.LectureCount())
}

func TestMergeConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	viper.Set("count", 5)
	viper.Set("lectures_dir", dir)
	viper.Set("output", filepath.Join(dir, "out.tex"))
	viper.Set("report", "report.yaml")

	cfg, err := mergeConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.LectureCount())
	assert.Equal(t, dir, cfg.LecturesDir)
	assert.Equal(t, filepath.Join(dir, "out.tex"), cfg.OutputFile)
	assert.Equal(t, "report.yaml", cfg.ReportFile)
}
