package textproc

import "unicode/utf8"

// EditDistance is the Levenshtein distance between a and b counted in
// runes, with unit cost for insertion, deletion and substitution.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// DistanceRatio returns EditDistance(input, reference) divided by the rune
// length of reference. ok is false when reference is empty, so callers
// treat the pair as non-matching instead of dividing by zero.
func DistanceRatio(input, reference string) (ratio float64, ok bool) {
	n := RuneLen(reference)
	if n == 0 {
		return 0, false
	}
	return float64(EditDistance(input, reference)) / float64(n), true
}
