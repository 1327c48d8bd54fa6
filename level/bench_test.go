package level_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lenscontour/level"
)

// BenchmarkSearch measures the threshold search for the standard levels on
// normalised 2D Gaussians of growing size.
func BenchmarkSearch(b *testing.B) {
	for _, n := range []int{51, 101, 201} {
		p := gaussian2D(n, 5)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = level.Search(p, level.StandardLevels)
			}
		})
	}
}

// BenchmarkFind1D measures 1D bracketing on a finely sampled Gaussian.
func BenchmarkFind1D(b *testing.B) {
	x, l := gaussian1D(-5, 0.01, 1001)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = level.Find1D(x, l, 0.683, 2)
	}
}
