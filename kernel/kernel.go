// Package kernel provides the stateless numeric primitives that chunk
// payloads are dispatched to. Each function is a pure, single-shot
// computation over its own input; there is no cross-call state and callers
// may safely invoke any of them concurrently.
package kernel

// ElementwiseSquare returns a new sequence with the same length as in where
// each entry is the square of the corresponding input entry. The input
// slice is never modified.
func ElementwiseSquare(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = v * v
	}
	return out
}

// RangeSumOfSquares returns the sum of i*i for every integer i in the
// half-open interval [start, end). Each index is converted to a float64
// before it is squared so that results are bit-comparable with other
// implementations that accumulate in the same left-to-right order. An empty
// or inverted range yields 0.
func RangeSumOfSquares(start, end uint32) float64 {
	var sum float64
	for i := start; i < end; i++ {
		v := float64(i)
		sum += v * v
	}
	return sum
}

// Sum returns the sum of all entries in the input sequence, accumulated
// sequentially in input order. An empty sequence yields 0.
func Sum(in []float64) float64 {
	var sum float64
	for _, v := range in {
		sum += v
	}
	return sum
}

// Average returns the arithmetic mean of the input sequence using the same
// sequential accumulation order as Sum. An empty sequence yields 0 rather
// than NaN.
func Average(in []float64) float64 {
	if len(in) == 0 {
		return 0
	}
	return Sum(in) / float64(len(in))
}
