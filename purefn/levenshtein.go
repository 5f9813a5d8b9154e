package purefn

import "github.com/on-the-ground/memo_ive_go/pure"

// Levenshtein returns the edit distance between a and b, compared rune by rune.
// The recursion is memoized on the pair of suffix offsets.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	var dist func(i, j int) int
	dist = pure.TableizeI2O1(func(i, j int) int {
		if i == len(ra) {
			return len(rb) - j
		}
		if j == len(rb) {
			return len(ra) - i
		}
		if ra[i] == rb[j] {
			return dist(i+1, j+1)
		}
		return 1 + min(
			dist(i+1, j),
			dist(i, j+1),
			dist(i+1, j+1),
		)
	}, pure.WithName("levenshtein"), pure.WithSizeHint((len(ra)+1)*(len(rb)+1)))

	return dist(0, 0)
}
