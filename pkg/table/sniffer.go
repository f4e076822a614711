package table

import (
	"strings"
)

// separatorCandidates are checked in order; earlier entries win ties.
var separatorCandidates = []rune{',', '\t', ';', '|'}

// DetectSeparator guesses the field separator of sample.
// Common separators checked: comma, tab, semicolon, pipe.
//
// Each candidate scores its count on the first line, multiplied by ten when
// every non-empty line has the same count. Separators inside double quotes
// are not counted. Returns ',' when no candidate occurs.
func DetectSeparator(sample string) rune {
	lines := strings.Split(sample, "\n")

	best := ','
	bestScore := 0
	for _, sep := range separatorCandidates {
		counts := make([]int, 0, len(lines))
		for _, line := range lines {
			line = strings.TrimSuffix(line, "\r")
			if line == "" {
				continue
			}
			counts = append(counts, countSeparator(line, sep))
		}
		if len(counts) == 0 || counts[0] == 0 {
			continue
		}

		score := counts[0]
		consistent := true
		for _, c := range counts[1:] {
			if c != counts[0] {
				consistent = false
				break
			}
		}
		if consistent {
			score *= 10 // Bonus for consistency
		}

		if score > bestScore {
			best = sep
			bestScore = score
		}
	}

	return best
}

// countSeparator counts occurrences of sep, ignoring quoted sections.
func countSeparator(line string, sep rune) int {
	count := 0
	inQuotes := false

	for _, ch := range line {
		if ch == '"' {
			inQuotes = !inQuotes
		} else if ch == sep && !inQuotes {
			count++
		}
	}

	return count
}
