package snap

import (
	"github.com/twpayne/go-geom"

	"github.com/peterhenningsen/jsts/transform"
)

// snapTransformer runs a LineStringSnapper over every coordinate sequence
// of a geometry tree. All of its configuration lives in explicit fields so
// concurrent snaps with different settings cannot interfere.
type snapTransformer struct {
	snapTolerance float64
	snapPts       []geom.Coord
	isSelfSnap    bool
}

func (st *snapTransformer) transformer() *transform.Transformer {
	t := transform.New()
	t.Coords = st.snapCoords
	return t
}

func (st *snapTransformer) snapCoords(coords []geom.Coord, parent geom.T) ([]geom.Coord, error) {
	snapper := NewLineStringSnapper(coords, st.snapTolerance)
	snapper.AllowSnappingToSourceVertices = st.isSelfSnap
	return snapper.SnapTo(st.snapPts), nil
}
