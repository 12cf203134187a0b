// Package selector maps host memory to a model identifier via two ordered
// thresholds. It is pure: no I/O, no probing; callers feed it whatever memory
// figure they trust.
package selector

// Thresholds is the ordered pair of memory cutoffs in whole gigabytes.
// High > Medium is enforced by the configuration loader.
type Thresholds struct {
	High   int
	Medium int
}

// Tiers binds the three model identifiers a selection can resolve to.
type Tiers struct {
	Large  string
	Medium string
	Small  string
}

// Select picks the tier for memGB. Comparisons are inclusive: a host with
// exactly High gigabytes selects the large tier. A memGB of 0 (unknown
// platform) lands in the small tier.
func Select(memGB int, t Thresholds, tiers Tiers) string {
	switch {
	case memGB >= t.High:
		return tiers.Large
	case memGB >= t.Medium:
		return tiers.Medium
	default:
		return tiers.Small
	}
}
