package quadtree

import (
	"io"

	"github.com/segmentio/encoding/json"
)

// GridCell describes one cell of the tree for diagnostics and visualization.
type GridCell struct {
	Rect    Rect `json:"rect"`
	Level   int  `json:"level"`
	Leaf    bool `json:"leaf"`
	Objects int  `json:"objects"` // stored entries, duplicates included; zero for nodes
}

// GridCells returns the cells of the tree in the same order as GetGrid.
func (qt *QuadTree[T]) GridCells() []GridCell {
	cells := qt.store.Cells(qt.root, nil)
	out := make([]GridCell, len(cells))
	for i, c := range cells {
		out[i] = GridCell{
			Rect:    c.Rect,
			Level:   c.Level,
			Leaf:    c.Leaf,
			Objects: c.Objects,
		}
	}
	return out
}

// WriteGridJSON writes GridCells to w as a JSON array.
func (qt *QuadTree[T]) WriteGridJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(qt.GridCells())
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Objects   int `json:"objects"`    // Len
	Sectors   int `json:"sectors"`    // cells in the tree
	Leaves    int `json:"leaves"`     // cells holding objects directly
	Nodes     int `json:"nodes"`      // cells split into quadrants
	Depth     int `json:"depth"`      // deepest level in use
	MaxBucket int `json:"max_bucket"` // largest leaf
}

// Stats walks the tree and returns its shape.
func (qt *QuadTree[T]) Stats() Stats {
	s := Stats{Objects: qt.count}
	for _, c := range qt.store.Cells(qt.root, nil) {
		s.Sectors++
		if c.Leaf {
			s.Leaves++
			s.MaxBucket = max(s.MaxBucket, c.Objects)
		} else {
			s.Nodes++
		}
		s.Depth = max(s.Depth, c.Level)
	}
	return s
}
