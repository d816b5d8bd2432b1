package match

// Levenshtein computes the Levenshtein distance (edit distance) between two strings,
// counting runes. The distance is the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to transform one string into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the shorter string in the rows
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Suggest returns the candidate nearest to name after normalization. Candidates
// further than a third of the name's length (at least two edits) are not suggested;
// ties keep the earliest candidate.
func Suggest(name string, candidates []string) (string, bool) {
	target := NormalizeIdent(name)
	limit := max(2, len([]rune(target))/3)

	best, bestDist := "", limit+1
	for _, c := range candidates {
		if d := Levenshtein(target, NormalizeIdent(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist <= limit
}
