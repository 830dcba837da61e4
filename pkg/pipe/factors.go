package pipe

// Factorize reports the ascending prime factors of n (with multiplicity)
// to emit, one call per factor. n must be positive; n == 1 emits nothing.
// Trial division starts at 2 and then tries only odd candidates, which is
// enough for the bounded spans this engine runs over.
func Factorize(n int, emit func(factor int)) {
	factor := 2
	for n > 1 {
		if n%factor == 0 {
			emit(factor)
			n /= factor
		} else if factor == 2 {
			factor = 3
		} else {
			factor += 2
		}
	}
}

// Factors returns the ascending prime factors of n as a slice.
// Factors(1) returns nil.
func Factors(n int) []int {
	var fs []int
	Factorize(n, func(f int) {
		fs = append(fs, f)
	})
	return fs
}
