// counts.go — closed-form combinatorial counts used to pre-estimate
// complexity before committing to a build. Build produces trees whose
// entity counts exactly match these formulas.

package builder

import "math"

// Complexity level tokens returned by ComplexityLevel.
const (
	ComplexityLow     = "LOW"     // fewer than 100 scenarios
	ComplexityMedium  = "MEDIUM"  // fewer than 1,000 scenarios
	ComplexityHigh    = "HIGH"    // fewer than 10,000 scenarios
	ComplexityExtreme = "EXTREME" // 10,000 scenarios or more
)

// saturatingPow returns base^exp, clamped to math.MaxInt on overflow so the
// complexity guard still trips for absurd configurations.
func saturatingPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		if result > math.MaxInt/base {
			return math.MaxInt
		}
		result *= base
	}

	return result
}

// saturatingAdd returns a+b clamped to math.MaxInt.
func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}

// TotalHistories returns S^R: the number of root-to-terminal paths.
// Complexity: O(R).
func TotalHistories(rounds, branching int) int {
	return saturatingPow(branching, rounds)
}

// TotalScenarios returns the geometric series Σ_{d=0..R} S^d: one root
// plus S^d scenarios per level. The degenerate branching==1 case collapses
// to a chain of R+1 scenarios. Complexity: O(R).
func TotalScenarios(rounds, branching int) int {
	if branching == 1 {
		return rounds + 1
	}

	total := 0
	for d := 0; d <= rounds; d++ {
		total = saturatingAdd(total, saturatingPow(branching, d))
	}

	return total
}

// TotalActions returns Σ_{d=1..R} S^d: every non-root scenario carries
// exactly one incoming action. The degenerate branching==1 case is a chain
// of R actions. Complexity: O(R).
func TotalActions(rounds, branching int) int {
	if branching == 1 {
		return rounds
	}

	total := 0
	for d := 1; d <= rounds; d++ {
		total = saturatingAdd(total, saturatingPow(branching, d))
	}

	return total
}

// ComplexityLevel classifies a configuration by its closed-form scenario
// count, for display before the caller commits to a build.
func ComplexityLevel(rounds, branching int) string {
	scenarios := TotalScenarios(rounds, branching)
	switch {
	case scenarios < 100:
		return ComplexityLow
	case scenarios < 1000:
		return ComplexityMedium
	case scenarios < 10000:
		return ComplexityHigh
	default:
		return ComplexityExtreme
	}
}
