// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slidemerge/pkg/types"
)

// WriteReport writes the run summary to path as YAML.
func WriteReport(path string, report *types.MergeReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// LoadReport reads a report previously written by WriteReport.
func LoadReport(path string) (*types.MergeReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var report types.MergeReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &report, nil
}
