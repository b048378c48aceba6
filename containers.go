package aoc

import "fmt"

// Chunks splits in into consecutive windows of n elements.
// The length of in must be a multiple of n.
func Chunks[T any](in []T, n int) ([][]T, error) {
	if n <= 0 {
		return nil, fmt.Errorf("chunk size %d; want > 0", n)
	}
	if len(in)%n != 0 {
		return nil, fmt.Errorf("%d elements is not a multiple of %d", len(in), n)
	}
	out := make([][]T, 0, len(in)/n)
	for i := 0; i < len(in); i += n {
		out = append(out, in[i:i+n:i+n])
	}
	return out, nil
}
