// letters.go — the subtree-letter scheme for action labels.

package builder

import "github.com/katalvlaran/gametree/core"

// maxSubtrees is the capacity of the letter scheme: a..z then A..Z.
const maxSubtrees = 52

// subtreeLetter maps a root-child index to its subtree letter.
// Index 0..25 yields 'a'..'z', 26..51 yields 'A'..'Z'.
func subtreeLetter(index int) (byte, error) {
	switch {
	case index < 0 || index >= maxSubtrees:
		return 0, core.Domainf(ErrTooManySubtrees,
			"Too many subtrees in the game. Reduce the branching factor.",
			"subtreeLetter(%d): scheme supports %d subtrees", index, maxSubtrees)
	case index < 26:
		return byte('a' + index), nil
	default:
		return byte('A' + index - 26), nil
	}
}
