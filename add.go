package add

// Add returns the sum of a and b as an int32. If the mathematical sum
// does not fit in 32 bits, the result wraps around two's-complement
// style. Overflow is defined behavior here, not a failure: Add is
// total and never panics.
func Add(a, b int32) int32 {
	return a + b
}

// AddU is Add computed in unsigned 32-bit arithmetic, with the bit
// pattern reinterpreted as signed. Bit-for-bit identical to Add on
// all inputs.
func AddU(a, b int32) int32 {
	return int32(uint32(a) + uint32(b))
}

// AddAll folds vs left to right with Add. An empty input yields 0.
// Chains wrap exactly where a chain of native 32-bit additions would,
// so no real-number associativity holds near the int32 boundaries.
func AddAll(vs ...int32) int32 {
	var sum int32
	for _, v := range vs {
		sum += v
	}
	return sum
}
