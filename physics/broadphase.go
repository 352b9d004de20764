package physics

import "math"

// cellKey addresses a column of the XZ spatial hash
type cellKey struct {
	x, z int32
}

// spatialHash buckets bodies by the XZ cells their bounds overlap
// Y is ignored: terrain is a thin layer and columns stay short
type spatialHash struct {
	cellSize float64
	inv      float64
	cells    map[cellKey][]*body
}

func newSpatialHash(cellSize float64) *spatialHash {
	return &spatialHash{
		cellSize: cellSize,
		inv:      1 / cellSize,
		cells:    make(map[cellKey][]*body),
	}
}

// maxIdleCells bounds the bucket map of the dynamic hash; fast bodies touch many cells
const maxIdleCells = 4096

// reset empties buckets while keeping their backing arrays
func (h *spatialHash) reset() {
	if len(h.cells) > maxIdleCells {
		h.cells = make(map[cellKey][]*body)
		return
	}
	for k, v := range h.cells {
		h.cells[k] = v[:0]
	}
}

func (h *spatialHash) span(b *body) (x0, z0, x1, z1 int32) {
	lo, hi := b.bounds()
	x0 = int32(math.Floor(lo.X() * h.inv))
	z0 = int32(math.Floor(lo.Z() * h.inv))
	x1 = int32(math.Floor(hi.X() * h.inv))
	z1 = int32(math.Floor(hi.Z() * h.inv))
	return
}

// insert adds b to every cell its bounds overlap
func (h *spatialHash) insert(b *body) {
	x0, z0, x1, z1 := h.span(b)
	for x := x0; x <= x1; x++ {
		for z := z0; z <= z1; z++ {
			k := cellKey{x, z}
			h.cells[k] = append(h.cells[k], b)
		}
	}
}

// query calls fn once per body sharing a cell with b, deduplicated by stamp
func (h *spatialHash) query(b *body, stamp uint64, fn func(other *body)) {
	x0, z0, x1, z1 := h.span(b)
	for x := x0; x <= x1; x++ {
		for z := z0; z <= z1; z++ {
			for _, o := range h.cells[cellKey{x, z}] {
				if o == b || o.stamp == stamp {
					continue
				}
				o.stamp = stamp
				fn(o)
			}
		}
	}
}
