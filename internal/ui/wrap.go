package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Wrap breaks s into lines no wider than width when drawn with face.
// Breaks happen at spaces; a single word wider than width gets its own line.
// Existing newlines are kept.
func Wrap(s string, face text.Face, width float64) string {
	var out strings.Builder
	for i, para := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		line := ""
		for _, word := range strings.Split(para, " ") {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && text.Advance(candidate, face) > width {
				out.WriteString(line)
				out.WriteByte('\n')
				line = word
				continue
			}
			line = candidate
		}
		out.WriteString(line)
	}
	return out.String()
}
