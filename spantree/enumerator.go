package spantree

// EdgeSource gives the enumerator what it needs to test whether selecting
// edge pos would close a cycle: that edge's endpoints in both graphs.
type EdgeSource interface {
	Endpoints(pos int) (giTail, giHead, gvTail, gvHead int)
}

// Enumerator walks every common spanning tree of a circuit's dual graph:
// every ascending selection of free edges that, added to the forced edges
// and the one closing edge, spans both graphs without a cycle in either.
type Enumerator struct {
	edges     EdgeSource
	edgeCount int
	sdim      int

	ccgi *ccTable
	ccgv *ccTable

	chosen []int
}

// NewEnumerator seeds the enumerator with the forced edges and the pass's
// closing edge, then reports ErrForcedCycle if that seed alone already
// closes a cycle in either graph — spec.md's mandated preflight, run once
// per pass before any free edge is considered.
func NewEnumerator(edges EdgeSource, edgeCount, nodeCount int, forced []int, closing int) (*Enumerator, error) {
	e := &Enumerator{
		edges:     edges,
		edgeCount: edgeCount,
		sdim:      nodeCount - 2 - len(forced),
		ccgi:      newCCTable(nodeCount),
		ccgv:      newCCTable(nodeCount),
		chosen:    make([]int, 0, nodeCount),
	}

	seed := make([]int, 0, len(forced)+1)
	seed = append(seed, forced...)
	seed = append(seed, closing)

	for _, pos := range seed {
		git, gih, gvt, gvh := e.edges.Endpoints(pos)
		if e.ccgi.Connected(git, gih) || e.ccgv.Connected(gvt, gvh) {
			return nil, ErrForcedCycle
		}
		e.ccgi.Add(git, gih)
		e.ccgv.Add(gvt, gvh)
	}
	return e, nil
}

// Enumerate visits every completed common spanning tree exactly once, in
// ascending edge-position order, calling visit with the chosen free-edge
// positions (forced edges and the closing edge are not included — the
// caller already has those). visit's slice is reused between calls and
// must not be retained past the call.
func (e *Enumerator) Enumerate(visit func(free []int) error) error {
	return e.search(0, visit)
}

func (e *Enumerator) search(from int, visit func([]int) error) error {
	if len(e.chosen) == e.sdim {
		return visit(e.chosen)
	}

	remaining := e.sdim - len(e.chosen)
	last := e.edgeCount - remaining
	for pos := from; pos <= last; pos++ {
		git, gih, gvt, gvh := e.edges.Endpoints(pos)
		if e.ccgi.Connected(git, gih) || e.ccgv.Connected(gvt, gvh) {
			continue
		}

		e.chosen = append(e.chosen, pos)
		e.ccgi.Add(git, gih)
		e.ccgv.Add(gvt, gvh)

		err := e.search(pos+1, visit)

		e.ccgi.Remove(git, gih)
		e.ccgv.Remove(gvt, gvh)
		e.chosen = e.chosen[:len(e.chosen)-1]

		if err != nil {
			return err
		}
	}
	return nil
}
