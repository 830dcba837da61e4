package pipe

// maxPowerOfThree is 3^40, the largest power of three that fits in 64 bits.
const maxPowerOfThree uint64 = 12157665459056928801

// IsPowerOfTwo reports whether x is a positive power of two (1, 2, 4, ...).
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// IsPowerOfThree reports whether x is a positive power of three (1, 3, 9, ...).
// Every power of three divides 3^40 evenly; no other positive integer does.
func IsPowerOfThree(x int) bool {
	return x > 0 && maxPowerOfThree%uint64(x) == 0
}
