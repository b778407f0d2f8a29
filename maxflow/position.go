package maxflow

// kind tags which of the four residual-vertex shapes a position is.
type kind uint8

const (
	kindSource kind = iota
	kindSink
	kindBefore
	kindAfter
)

// pos identifies a single vertex of the node-split residual graph: the
// distinguished Source, the distinguished Sink, or the Before/After half
// of some original node.
type pos struct {
	kind kind
	node int
}

func source() pos      { return pos{kind: kindSource} }
func sink() pos        { return pos{kind: kindSink} }
func before(n int) pos { return pos{kind: kindBefore, node: n} }
func after(n int) pos  { return pos{kind: kindAfter, node: n} }

// id maps a position to a dense integer in [0, 2+2*nodeCount), for O(1)
// indexing into the visited/parent scratch slices.
func (p pos) id(nodeCount int) int {
	switch p.kind {
	case kindSource:
		return 0
	case kindSink:
		return 1
	case kindBefore:
		return 2 + p.node
	default: // kindAfter
		return 2 + nodeCount + p.node
	}
}
