package progression_test

import (
	"fmt"
	"testing"

	"github.com/fernwood/skillgraph/core"
	"github.com/fernwood/skillgraph/progression"
)

// layeredGraph builds layers×width skills with every skill linked to two
// skills of the next layer — a dense DAG shaped like real curricula.
func layeredGraph(layers, width int) ([]string, []core.Edge) {
	ids := make([]string, 0, layers*width)
	for l := 0; l < layers; l++ {
		for w := 0; w < width; w++ {
			ids = append(ids, fmt.Sprintf("S%d_%d", l, w))
		}
	}
	var edges []core.Edge
	for l := 0; l+1 < layers; l++ {
		for w := 0; w < width; w++ {
			src := fmt.Sprintf("S%d_%d", l, w)
			edges = append(edges,
				core.Edge{Source: src, Target: fmt.Sprintf("S%d_%d", l+1, w)},
				core.Edge{Source: src, Target: fmt.Sprintf("S%d_%d", l+1, (w+1)%width)},
			)
		}
	}

	return ids, edges
}

func BenchmarkCompute(b *testing.B) {
	for _, size := range []struct{ layers, width int }{{10, 10}, {20, 50}, {40, 100}} {
		ids, edges := layeredGraph(size.layers, size.width)
		b.Run(fmt.Sprintf("%dx%d", size.layers, size.width), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				progression.Compute(ids, edges)
			}
		})
	}
}
