// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge combines per-lecture Beamer sources into one standalone
// LaTeX document. The transforms are plain pattern substitutions over the
// source text; no LaTeX structure is parsed.
package merge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/slidemerge/pkg/types"
)

const (
	// recapTitle is the frame title of the block dropped from every lecture.
	recapTitle = "Recap of Previous Lecture"
	// figsPrefix is the lecture-relative figure path prefix.
	figsPrefix = "{figs/"
	// tocDirective is rewritten to scope each outline to its own part.
	tocDirective = `\tableofcontents`
	// titleMacro generates the per-lecture title page.
	titleMacro = `\createdgmtitle`
)

var (
	// bodyPattern captures the first document environment body.
	bodyPattern = regexp.MustCompile(`(?s)\\begin\{document\}(.*?)\\end\{document\}`)

	// recapPattern matches a comment rule followed by the recap frame.
	recapPattern = regexp.MustCompile(`(?s)%[=-]+\s*\\begin\{frame\}\{` +
		regexp.QuoteMeta(recapTitle) + `\}.*?\\end\{frame\}`)

	// separator is the comment rule drawn above each lecture.
	separator = "%" + strings.Repeat("=", 80)
)

// LecturePath returns the conventional source path for a lecture:
// lecturesDir/lectureN/LectureN.tex.
func LecturePath(lecturesDir string, index int) string {
	n := strconv.Itoa(index)
	return filepath.Join(lecturesDir, "lecture"+n, "Lecture"+n+".tex")
}

// Extract reads lecture index from lecturesDir and returns its transformed
// fragment. A file that cannot be found, or one without a document
// environment, is reported to w and yields an absent fragment with a nil
// error. Only a read failure on a file that exists is returned.
func Extract(index int, lecturesDir string, w io.Writer) (types.Fragment, error) {
	path := LecturePath(lecturesDir, index)
	frag := types.Fragment{Index: index, Path: path}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "Warning: %s not found, skipping...\n", path)
		frag.Status = types.FragmentMissing
		return frag, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return frag, fmt.Errorf("reading lecture %d: %w", index, err)
	}

	m := bodyPattern.FindStringSubmatch(string(data))
	if m == nil {
		fmt.Fprintf(w, "Warning: Could not find document environment in %s\n", path)
		frag.Status = types.FragmentMalformed
		return frag, nil
	}

	frag.Text = lectureHeader(index) + TransformBody(index, m[1])
	frag.Status = types.FragmentMerged
	return frag, nil
}

// TransformBody applies the per-lecture rewrites to a document body: recap
// frames are removed, figure paths point into the lecture's own folder, and
// the table of contents is scoped to the lecture's part.
func TransformBody(index int, body string) string {
	n := strconv.Itoa(index)
	body = recapPattern.ReplaceAllLiteralString(body, "")
	body = strings.ReplaceAll(body, figsPrefix, "{../lecture"+n+"/figs/")
	body = strings.ReplaceAll(body, tocDirective, tocDirective+"[part="+n+"]")
	return body
}

// lectureHeader returns the separator comment, part declaration, and title
// macro placed before each lecture body.
func lectureHeader(index int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%% LECTURE %d\n%s\n", separator, index, separator)
	fmt.Fprintf(&b, "\\part{Lecture %d}\n", index)
	fmt.Fprintf(&b, "%s{%d}\n", titleMacro, index)
	return b.String()
}
