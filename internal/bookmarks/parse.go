// SPDX-License-Identifier: MIT
// Copyright 2026 Vanco Ordanoski

package bookmarks

import (
	"bufio"
	"regexp"
	"strings"
)

// groupLine matches a section header such as "------ Dev Servers ------".
var groupLine = regexp.MustCompile(`^-+\s*(.+?)\s*-+$`)

// Parse reads the bookmark file text into its ordered entry list.
//
// The parse is deliberately lenient and never fails: a hand-edited file must
// never lock the user out of the tray menu. Classification per line, after
// trimming surrounding whitespace:
//
//   - blank lines and lines starting with "#" are skipped;
//   - lines matching groupLine become group headers;
//   - any other line containing a tab is a bookmark, split on the first tab
//     into label and target;
//   - everything else is silently dropped.
func Parse(text string) []Entry {
	var entries []Entry

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m := groupLine.FindStringSubmatch(line); m != nil {
			entries = append(entries, NewGroup(m[1]))
			continue
		}

		if label, target, found := strings.Cut(line, "\t"); found {
			entries = append(entries, NewBookmark(
				strings.TrimSpace(label),
				strings.TrimSpace(target),
			))
		}
	}

	return entries
}

// Serialize renders entries back to the bookmark file format, one entry per
// line in input order. Group headers are framed with six dashes on each side;
// bookmarks are label and target separated by a single tab.
//
// Serialize(Parse(text)) reproduces the same semantic entries as text;
// comments and whitespace are normalized away.
func Serialize(entries []Entry) string {
	var b strings.Builder

	for _, e := range entries {
		switch e.Kind {
		case KindGroup:
			b.WriteString("------ " + e.Name + " ------\n")
		case KindBookmark:
			b.WriteString(e.Label + "\t" + e.Target + "\n")
		}
	}

	return b.String()
}
