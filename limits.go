package pagectl

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// IsNormalizedPageSizeMax clamps size into [1, maxPageSize]. Non-positive
// sizes become DefaultPageSize. The second value is true if size was
// already within bounds.
func IsNormalizedPageSizeMax(size int, maxPageSize int) (int, bool) {
	if size <= 0 {
		return min(DefaultPageSize, maxPageSize), false
	} else if size > maxPageSize {
		return maxPageSize, false
	}

	return size, true
}

func NormalizePageSizeMax(size int, maxPageSize int) int {
	ret, _ := IsNormalizedPageSizeMax(size, maxPageSize)
	return ret
}

// NormalizePageSize clamps size into [1, MaxPageSize].
//
// IMPORTANT:
// Controller does not normalize; NewController rejects non-positive sizes.
// Normalization is for request builders and producers of Page values.
func NormalizePageSize(size int) int {
	return NormalizePageSizeMax(size, MaxPageSize)
}
