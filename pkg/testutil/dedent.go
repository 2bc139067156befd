package testutil

import "strings"

// Dedent removes any common leading whitespace from every line in text. An
// initial newline is removed. Lines consisting only of spaces and tabs are
// emptied and do not count towards the common margin.
//
// This makes it possible to write multiline raw strings indented along with
// the surrounding code:
//
//	want := Dedent(`
//		; 3
//		; 4
//		`)
func Dedent(text string) string {
	text = strings.TrimPrefix(text, "\n")
	lines := strings.Split(text, "\n")

	margin, found := "", false
	for i, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			lines[i] = ""
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			margin, found = indent, true
		} else {
			margin = commonPrefix(margin, indent)
		}
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return a[:n]
}
