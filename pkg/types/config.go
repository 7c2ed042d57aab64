package types

// DefaultLectureCount is the number of lectures merged when no count is given.
const DefaultLectureCount = 14

// MergeConfig holds settings for a merge run.
type MergeConfig struct {
	// LecturesDir is the lectures root that contains lecture1/, lecture2/, ...
	LecturesDir string `json:"lectures_dir" yaml:"lectures_dir" mapstructure:"lectures_dir"`

	// OutputFile is the merged .tex file, overwritten on success.
	OutputFile string `json:"output" yaml:"output" mapstructure:"output"`

	// Count is the number of sequential lectures to merge, starting at 1 (default 14).
	Count int `json:"count" yaml:"count" mapstructure:"count"`

	// ReportFile is an optional path for a YAML summary of the run.
	ReportFile string `json:"report,omitempty" yaml:"report,omitempty" mapstructure:"report"`
}

// LectureCount returns Count, or DefaultLectureCount when Count is not positive.
func (c MergeConfig) LectureCount() int {
	if c.Count <= 0 {
		return DefaultLectureCount
	}
	return c.Count
}
