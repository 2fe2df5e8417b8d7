package domain

// PositiveOr returns the first strictly positive value, or the fallback.
// Zero and negative credit settings mean "not set" on every input surface.
func PositiveOr(fallback int, vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return fallback
}
