package readability

import "strings"

// SyllableCount estimates the number of syllables in a single word using a
// vowel-group heuristic: each maximal run of vowels (a, e, i, o, u, y) counts
// as one syllable, a trailing silent "e" is discounted, and every word counts
// at least one. English being English, this is an approximation, but it is
// the same class of approximation the readability formulas were fitted to.
func SyllableCount(word string) int {
	w := strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	// Silent trailing "e": "table" keeps its final syllable ("-le"),
	// "grape" does not.
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
