// Package check compares roll totals against roll-under targets.
package check

// MeetsTarget reports whether total lands at or under target, the
// percentile convention where lower is better.
func MeetsTarget(total, target int) bool {
	return total <= target
}

// Result represents the outcome of a check.
type Result struct {
	Success bool
	// Margin is how far the total landed under the target; negative on
	// failure.
	Margin int
}

// CheckUnder performs a roll-under target check.
func CheckUnder(total, target int) Result {
	return Result{
		Success: MeetsTarget(total, target),
		Margin:  target - total,
	}
}
