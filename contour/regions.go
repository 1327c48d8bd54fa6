package contour

import "fmt"

// Connectivity selects the neighbourhood used to join cells into regions.
type Connectivity int

const (
	// Conn4 joins orthogonal neighbours: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours.
	Conn8
)

// Cell is a pixel of a 2D reduction: Row indexes the first remaining
// parameter, Col the second.
type Cell struct {
	Row, Col int
}

// Region is one connected component of a super-level set, in discovery order.
type Region []Cell

// Regions labels the connected components of {p > threshold} on the current
// 2D reduction. Components are ordered by their first cell in a row-major
// scan. More than one region at a confidence threshold means the contour is
// multi-modal.
//
// Time O(R·C·d), memory O(R·C), d = 4 or 8.
func (e *Engine) Regions(threshold float64, conn Connectivity) ([]Region, error) {
	if e.reduced == nil {
		return nil, fmt.Errorf("Regions: %w", ErrNoReduction)
	}
	g := e.reduced.Grid
	if g.NDim() != 2 {
		return nil, fmt.Errorf("Regions: %w", ErrNotTwoDimensional)
	}
	rows, cols := g.Dim(0), g.Dim(1)
	data := g.RawData()
	offsets := neighborOffsets(conn)

	seen := make([]bool, rows*cols)
	var regions []Region
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i0 := r*cols + c
			if seen[i0] || !(data[i0] > threshold) {
				continue
			}
			// BFS over the component.
			queue := []int{i0}
			seen[i0] = true
			var region Region
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ur, uc := u/cols, u%cols
				region = append(region, Cell{Row: ur, Col: uc})
				for _, d := range offsets {
					vr, vc := ur+d[0], uc+d[1]
					if vr < 0 || vr >= rows || vc < 0 || vc >= cols {
						continue
					}
					vi := vr*cols + vc
					if !seen[vi] && data[vi] > threshold {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions, nil
}

// RegionCounts returns the number of regions at each threshold.
func (e *Engine) RegionCounts(thresholds []float64, conn Connectivity) ([]int, error) {
	out := make([]int, len(thresholds))
	for i, t := range thresholds {
		regions, err := e.Regions(t, conn)
		if err != nil {
			return nil, err
		}
		out[i] = len(regions)
	}

	return out, nil
}

func neighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}
