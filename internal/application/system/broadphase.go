package system

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/younwookim/wallhop/internal/domain/entity"
)

// Resolv tags for level geometry
const (
	resolvSolid    = "solid"
	resolvDeadZone = "deadzone"
	resolvPlayer   = "player"
)

// broadphaseMargin inflates every object registered with the space. resolv
// maps an object's far edge with a one-unit inset, which would otherwise
// miss sub-unit overlaps.
const broadphaseMargin = 1.0

// maxBroadphaseCells caps the resolv grid. Cells double in size until a
// level's bounds fit.
const maxBroadphaseCells = 1 << 16

// geometryIndex is a resolv spatial hash over a level's boxes, used to find
// the boxes that may overlap the player. It never decides a collision itself.
type geometryIndex struct {
	space   *resolv.Space
	query   *resolv.Object
	cols    int
	rows    int
	originX float64
	originY float64
}

// newGeometryIndex builds the spatial hash for a level. Resolv spaces start
// at (0,0), so world coordinates are shifted by the level's padded minimum.
func newGeometryIndex(level *entity.Level, cellSize int) *geometryIndex {
	if cellSize <= 0 {
		cellSize = 32
	}
	minX, minY, maxX, maxY := level.Bounds()
	cols, rows, pad := gridSize(maxX-minX, maxY-minY, cellSize)
	for float64(cols)*float64(rows) > maxBroadphaseCells && cellSize < math.MaxInt32/2 {
		cellSize *= 2
		cols, rows, pad = gridSize(maxX-minX, maxY-minY, cellSize)
	}

	idx := &geometryIndex{
		space:   resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
		cols:    cols,
		rows:    rows,
		originX: minX - pad,
		originY: minY - pad,
	}

	for i, b := range level.Boxes {
		tag := resolvSolid
		if b.Lethal {
			tag = resolvDeadZone
		}
		obj := idx.newObject(b.Center.X(), b.Center.Y(), b.HalfSize.X(), b.HalfSize.Y(), tag)
		obj.Data = i
		idx.space.Add(obj)
	}

	idx.query = idx.newObject(0, 0, 0, 0, resolvPlayer)
	idx.space.Add(idx.query)

	return idx
}

// gridSize returns the column and row counts covering a w x h area, padded by
// two cells on every side.
func gridSize(w, h float64, cellSize int) (cols, rows int, pad float64) {
	cell := float64(cellSize)
	pad = 2 * cell
	cols = int(math.Ceil((w+2*pad)/cell)) + 1
	rows = int(math.Ceil((h+2*pad)/cell)) + 1
	return cols, rows, pad
}

// newObject creates a resolv object for a center/half-size box in world space
func (idx *geometryIndex) newObject(cx, cy, hw, hh float64, tag string) *resolv.Object {
	return resolv.NewObject(
		cx-hw-broadphaseMargin-idx.originX,
		cy-hh-broadphaseMargin-idx.originY,
		2*hw+2*broadphaseMargin,
		2*hh+2*broadphaseMargin,
		tag,
	)
}

// Candidates returns the indices of the boxes near the player, in authoring
// order.
func (idx *geometryIndex) Candidates(player *entity.Player) []int {
	hw, hh := player.HalfSize.X(), player.HalfSize.Y()
	idx.query.X = player.Position.X() - hw - broadphaseMargin - idx.originX
	idx.query.Y = player.Position.Y() - hh - broadphaseMargin - idx.originY
	idx.query.W = 2*hw + 2*broadphaseMargin
	idx.query.H = 2*hh + 2*broadphaseMargin
	idx.query.Update()

	check := idx.query.Check(0, 0, resolvSolid, resolvDeadZone)
	if check == nil {
		return nil
	}

	out := make([]int, 0, len(check.Objects))
	for _, o := range check.Objects {
		if i, ok := o.Data.(int); ok {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return out
}
