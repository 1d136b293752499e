package text

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a compact preview of what changed between before and after:
// one "-" entry per deleted span and one "+" entry per inserted span, in
// document order. Equal content yields nil.
func Diff(before, after string) []string {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var out []string
	for _, d := range diffs {
		span := strings.ReplaceAll(d.Text, "\n", `\n`)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			out = append(out, "-"+span)
		case diffmatchpatch.DiffInsert:
			out = append(out, "+"+span)
		}
	}
	return out
}
