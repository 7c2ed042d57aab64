// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/slidemerge/pkg/types"
)

// DefaultOutputName is the merged document's file name.
const DefaultOutputName = "AllLectures_merged.tex"

// ErrNoPreamble is returned when lecture 1 cannot supply a preamble. It is the
// only condition that aborts a run.
var ErrNoPreamble = errors.New("could not extract preamble from Lecture1.tex")

// preamblePattern captures everything before the first \begin{document}.
var preamblePattern = regexp.MustCompile(`(?s)^(.*?)\\begin\{document\}`)

// supplement follows the copied preamble. It loads TikZ for the diagrams and
// turns the pause and reveal macros into no-ops so every slide shows its full
// content.
var supplement = "\n\\usepackage{tikz}\n" +
	"\\usetikzlibrary{arrows.meta,positioning,fit}\n" +
	"\n" +
	"% Disable slide pausing commands for merged document\n" +
	"\\renewcommand{\\eqpause}{}\n" +
	"\\renewcommand{\\nextonslide}[1]{#1}\n" +
	"\n" +
	"\\begin{document}\n" +
	"%" + strings.Repeat("-", 80) + "\n"

const documentEnd = "\n\\end{document}\n"

// MergeAll builds the combined document from lectures 1..cfg.LectureCount()
// and writes it to cfg.OutputFile, overwriting any previous file. Progress and
// warnings go to w. If lecture 1 has no usable preamble the run stops before
// anything is written and the error wraps ErrNoPreamble.
func MergeAll(cfg types.MergeConfig, w io.Writer) (*types.MergeReport, error) {
	count := cfg.LectureCount()

	fmt.Fprintf(w, "Lectures directory: %s\n", cfg.LecturesDir)
	fmt.Fprintf(w, "Output file: %s\n", cfg.OutputFile)

	preamble, err := readPreamble(cfg.LecturesDir)
	if err != nil {
		fmt.Fprintln(w, "Error: Could not extract preamble from Lecture1.tex")
		return nil, err
	}

	var out strings.Builder
	out.WriteString(preamble)
	out.WriteString(supplement)

	report := &types.MergeReport{
		OutputFile: cfg.OutputFile,
		Count:      count,
		Lectures:   make([]types.LectureReport, 0, count),
	}

	fmt.Fprintf(w, "\nMerging lectures 1 to %d...\n", count)
	for i := 1; i <= count; i++ {
		fmt.Fprintf(w, "Processing Lecture %d...\n", i)
		frag, err := Extract(i, cfg.LecturesDir, w)
		if err != nil {
			return nil, err
		}
		out.WriteString(frag.Text)
		report.Lectures = append(report.Lectures, types.LectureReport{
			Index:  frag.Index,
			Path:   frag.Path,
			Status: frag.Status,
			Chars:  utf8.RuneCountInString(frag.Text),
		})
	}

	out.WriteString(documentEnd)

	merged := out.String()
	if err := os.WriteFile(cfg.OutputFile, []byte(merged), 0o644); err != nil {
		return nil, fmt.Errorf("writing merged document: %w", err)
	}
	report.TotalChars = utf8.RuneCountInString(merged)

	fmt.Fprintf(w, "\n✓ Successfully merged %d lectures into: %s\n", count, cfg.OutputFile)
	fmt.Fprintf(w, "  Total size: %d characters\n", report.TotalChars)

	if cfg.ReportFile != "" {
		if err := WriteReport(cfg.ReportFile, report); err != nil {
			return report, err
		}
	}
	return report, nil
}

// readPreamble returns the text of lecture 1 that precedes its document body.
func readPreamble(lecturesDir string) (string, error) {
	data, err := os.ReadFile(LecturePath(lecturesDir, 1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoPreamble, err)
	}
	m := preamblePattern.FindStringSubmatch(string(data))
	if m == nil {
		return "", fmt.Errorf("%w: no \\begin{document} marker", ErrNoPreamble)
	}
	return m[1], nil
}
