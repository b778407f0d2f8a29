package maxflow

import "github.com/flowmap-go/flowmap/network"

// Infinity is the sentinel residual capacity used in place of a true
// infinite capacity. It must exceed any max-flow value the caller will
// ever push, which for FlowMap's labeling pass is bounded by K (the LUT
// input count). The design notes flag this as a sharp edge: if K ever
// approaches node_count(), this sentinel must grow accordingly, e.g. to
// node_count()*(K+1), or flow accounting will silently saturate.
const Infinity = 1000

// terminal is one entry of the Source or Sink fan-out/fan-in list: the
// original node it connects to, and the flow currently pushed across that
// connection (0 or up to Infinity, though FlowMap never needs more than K).
type terminal struct {
	node int
	flow int
}

// Engine computes max-flow on the node-split residual graph of the
// subnetwork reachable from the labeled node t, between a caller-supplied
// source set and sink set.
type Engine struct {
	net     *network.Network
	target  int
	sources []terminal
	sinks   []terminal
}

// New builds an Engine targeting t, with Source connected to every node in
// sources and every node in sinks connected to Sink, each leg carrying
// Infinity capacity. Node-split and real-edge capacities live on the
// network itself (NodeValue.Flow and EdgeValue), set up by the caller
// before the first Step.
func New(net *network.Network, t int, sources, sinks []int) *Engine {
	e := &Engine{net: net, target: t}
	for _, n := range sources {
		e.sources = append(e.sources, terminal{node: n})
	}
	for _, n := range sinks {
		e.sinks = append(e.sinks, terminal{node: n})
	}
	return e
}

func (e *Engine) sourceTerm(n int) (*terminal, bool) {
	for i := range e.sources {
		if e.sources[i].node == n {
			return &e.sources[i], true
		}
	}
	return nil, false
}

func (e *Engine) sinkTerm(n int) (*terminal, bool) {
	for i := range e.sinks {
		if e.sinks[i].node == n {
			return &e.sinks[i], true
		}
	}
	return nil, false
}

// descendants returns the positions directly reachable from p by following
// the residual graph forward (the direction capacity, not flow, governs).
func (e *Engine) descendants(p pos) []pos {
	switch p.kind {
	case kindSource:
		out := make([]pos, 0, len(e.sources))
		for _, t := range e.sources {
			out = append(out, before(t.node))
		}
		return out
	case kindSink:
		return nil
	case kindBefore:
		return []pos{after(p.node)}
	default: // kindAfter
		if _, ok := e.sinkTerm(p.node); ok {
			return []pos{sink()}
		}
		descs := e.net.Descendants(p.node)
		out := make([]pos, 0, len(descs))
		for _, d := range descs {
			out = append(out, before(d))
		}
		return out
	}
}

// ancestors returns the positions from which p is directly reachable by
// following the residual graph forward, i.e. p's direct predecessors.
func (e *Engine) ancestors(p pos) []pos {
	switch p.kind {
	case kindSource:
		return nil
	case kindSink:
		out := make([]pos, 0, len(e.sinks))
		for _, t := range e.sinks {
			out = append(out, after(t.node))
		}
		return out
	case kindBefore:
		ancs := e.net.Ancestors(p.node)
		out := make([]pos, 0, len(ancs))
		for _, a := range ancs {
			out = append(out, after(a))
		}
		return out
	default: // kindAfter
		return []pos{before(p.node)}
	}
}

// flowCap returns the (flow, capacity) of the directed residual edge
// from → to. Unrecognized pairs are non-edges and report (0, 0).
func (e *Engine) flowCap(from, to pos) (flow, cap int) {
	switch {
	case from.kind == kindSource && to.kind == kindBefore:
		if t, ok := e.sourceTerm(to.node); ok {
			return t.flow, Infinity
		}
		return 0, 0
	case from.kind == kindBefore && to.kind == kindAfter && from.node == to.node:
		f := e.net.Value(from.node).Flow
		return f, 1 - f
	case from.kind == kindAfter && to.kind == kindBefore:
		ev := e.net.EdgeValue(from.node, to.node)
		return ev.Flow, ev.Cap
	case from.kind == kindAfter && to.kind == kindSink:
		if t, ok := e.sinkTerm(from.node); ok {
			return t.flow, Infinity
		}
		return 0, 0
	default:
		return 0, 0
	}
}

// augment applies a signed flow delta to the residual edge from → to:
// flow += f, cap -= f. A negative f therefore implements the "backward
// edge" case (flow -= 1, cap += 1) by applying the delta to the edge in
// its original orientation.
func (e *Engine) augment(from, to pos, f int) {
	switch {
	case from.kind == kindSource && to.kind == kindBefore:
		if t, ok := e.sourceTerm(to.node); ok {
			t.flow += f
		}
	case from.kind == kindBefore && to.kind == kindAfter && from.node == to.node:
		e.net.Value(from.node).Flow += f
	case from.kind == kindAfter && to.kind == kindBefore:
		ev := e.net.EdgeValue(from.node, to.node)
		ev.Flow += f
		ev.Cap -= f
	case from.kind == kindAfter && to.kind == kindSink:
		if t, ok := e.sinkTerm(from.node); ok {
			t.flow += f
		}
	}
}

// hop records, for one visited position during search, where it was
// reached from and whether that hop followed a forward (capacity) or
// backward (flow) residual edge.
type hop struct {
	from    int
	forward bool
}

// search runs a single DFS from Source over the residual graph, recording
// a parent-array trail for every position it reaches. It never treats
// reaching Sink specially: the caller inspects visited[Sink's id] to learn
// whether an augmenting path exists.
func (e *Engine) search() (visited []bool, parent []hop) {
	n := e.net.NodeCount()
	size := 2 + 2*n
	visited = make([]bool, size)
	parent = make([]hop, size)
	for i := range parent {
		parent[i].from = -1
	}

	start := source()
	visited[start.id(n)] = true

	stack := []pos{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range e.descendants(cur) {
			did := d.id(n)
			if visited[did] {
				continue
			}
			if _, cap := e.flowCap(cur, d); cap > 0 {
				visited[did] = true
				parent[did] = hop{from: cur.id(n), forward: true}
				stack = append(stack, d)
			}
		}

		for _, a := range e.ancestors(cur) {
			aid := a.id(n)
			if visited[aid] {
				continue
			}
			if flow, _ := e.flowCap(a, cur); flow > 0 {
				visited[aid] = true
				parent[aid] = hop{from: cur.id(n), forward: false}
				stack = append(stack, a)
			}
		}
	}

	return visited, parent
}

func (e *Engine) posByID(id int) pos {
	n := e.net.NodeCount()
	switch {
	case id == 0:
		return source()
	case id == 1:
		return sink()
	case id < 2+n:
		return before(id - 2)
	default:
		return after(id - 2 - n)
	}
}

// Step finds one augmenting path from Source to Sink in the residual
// graph and augments it by one unit, returning true. If no augmenting
// path exists, it returns false and leaves the network unchanged.
func (e *Engine) Step() bool {
	n := e.net.NodeCount()
	visited, parent := e.search()

	sinkID := sink().id(n)
	if !visited[sinkID] {
		return false
	}

	// Walk the parent trail from Sink back to Source, augmenting each
	// residual edge by one unit in its original orientation.
	cur := sinkID
	for cur != source().id(n) {
		h := parent[cur]
		curPos := e.posByID(cur)
		fromPos := e.posByID(h.from)
		if h.forward {
			e.augment(fromPos, curPos, 1)
		} else {
			e.augment(curPos, fromPos, -1)
		}
		cur = h.from
	}

	return true
}

// Cut returns the minimum-cardinality node-split min-cut: after Step has
// returned false, orig (the node set of the labeled subnetwork, including
// the target) is partitioned into the nodes reachable from Source in the
// undirected-residual sense and the rest. The returned cut X̄ is the
// unreachable remainder.
func (e *Engine) Cut(orig []int) []int {
	visited, _ := e.search()
	n := e.net.NodeCount()

	reachable := make(map[int]bool, len(orig))
	for node := 0; node < n; node++ {
		if visited[before(node).id(n)] || visited[after(node).id(n)] {
			reachable[node] = true
		}
	}

	var cut []int
	for _, node := range orig {
		if !reachable[node] {
			cut = append(cut, node)
		}
	}

	return cut
}
