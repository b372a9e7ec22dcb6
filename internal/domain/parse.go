package domain

import (
	"regexp"
	"strings"
)

// minDataLineLen filters out stray fragments ("...", "10." etc.) that are
// too short to be a name line.
const minDataLineLen = 5

var (
	lineSplit = regexp.MustCompile(`\n+`)

	// entryPattern matches "3. Name - Meaning" with an optional ordinal and
	// any of the three separators models actually emit.
	entryPattern = regexp.MustCompile(`^\d*\.?\s*(.+?)\s*[-–:]\s*(.+)$`)

	// emphasis strips markdown bold/italic markers some models add despite
	// the prompt telling them not to.
	emphasis = strings.NewReplacer("**", "", "*", "", "_", "")

	// preamblePhrases identify introductory/meta lines, matched
	// case-insensitively ("Okay, here are 10 names based on...").
	preamblePhrases = []string{"okay, here", "based on", "parameter", "specified", "unique"}
)

// ParseNames extracts ordered (name, meaning) pairs from raw completion
// text. Lines that are empty, too short, preamble, separator-less, or that
// fail the entry pattern are dropped. Duplicates are kept; output order
// matches input order. Pure function, safe to call repeatedly.
func ParseNames(text string) []NameEntry {
	text = emphasis.Replace(text)

	var entries []NameEntry
	for _, line := range lineSplit.Split(text, -1) {
		line = strings.TrimSpace(line)
		if len(line) < minDataLineLen || isPreamble(line) {
			continue
		}
		if !strings.ContainsAny(line, "-–:") {
			continue
		}

		line = stripStray(line)
		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		entries = append(entries, NameEntry{
			Name:    strings.TrimSpace(m[1]),
			Meaning: strings.TrimSpace(m[2]),
		})
	}
	return entries
}

func isPreamble(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range preamblePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// stripStray removes leftover markup characters that survive the emphasis
// pass (tildes, backticks, odd underscores).
func stripStray(line string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '*', '_', '~', '`':
			return -1
		}
		return r
	}, line)
}
