// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FragmentStatus records what happened when a lecture source was extracted.
type FragmentStatus string

const (
	FragmentMerged    FragmentStatus = "merged"
	FragmentMissing   FragmentStatus = "missing"
	FragmentMalformed FragmentStatus = "malformed"
)

// Fragment is the transformed body of one lecture, ready to be appended to
// the merged document. Absent fragments carry empty Text.
type Fragment struct {
	// Index is the lecture number, starting at 1.
	Index int `json:"index" yaml:"index"`

	// Path is the lecture source file the fragment was read from.
	Path string `json:"path" yaml:"path"`

	// Text is the generated header followed by the transformed body.
	Text string `json:"-" yaml:"-"`

	// Status is merged, missing, or malformed.
	Status FragmentStatus `json:"status" yaml:"status"`
}

// Present reports whether the fragment contributes content.
func (f Fragment) Present() bool {
	return f.Status == FragmentMerged
}

// LectureReport summarizes one lecture's contribution to a merge run.
type LectureReport struct {
	Index  int            `json:"index" yaml:"index"`
	Path   string         `json:"path" yaml:"path"`
	Status FragmentStatus `json:"status" yaml:"status"`

	// Chars is the fragment length in Unicode code points.
	Chars int `json:"chars" yaml:"chars"`
}

// MergeReport summarizes a completed merge run.
type MergeReport struct {
	// OutputFile is the path of the merged document.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// Count is the number of lecture indices processed.
	Count int `json:"count" yaml:"count"`

	// TotalChars is the merged document length in Unicode code points.
	TotalChars int `json:"total_chars" yaml:"total_chars"`

	// Lectures lists every processed index in ascending order.
	Lectures []LectureReport `json:"lectures" yaml:"lectures"`
}

// Skipped returns the indices that contributed nothing to the output.
func (r *MergeReport) Skipped() []int {
	var out []int
	for _, l := range r.Lectures {
		if l.Status != FragmentMerged {
			out = append(out, l.Index)
		}
	}
	return out
}
