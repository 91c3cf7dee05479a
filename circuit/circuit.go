package circuit

import "github.com/sapecng/symcirc/slist"

// Circuit is the dual-graph representation being assembled by a component
// API (package elements) and, once complete, fed to Normalize and then
// analysis.Analyze.
type Circuit struct {
	Edges []Edge
	GI    *adjGraph
	GV    *adjGraph

	// Forced holds the index of every forced (nullor) edge, most-recently
	// added first — matching the original's list_add prepend order exactly,
	// since it's built the same way: PushFront on every AddForced call.
	Forced *slist.List[int]

	// YRef and GRef hold the edge index of each pass's synthetic closing
	// edge once SetBlock has run; nil beforehand.
	YRef *int
	GRef *int

	Reference NodeID
	BaseNode  NodeID
	Onode     NodeID
	Reserved  NodeID

	NNum  int
	EdNum int
	EfNum int

	offset int
}

// New creates an empty Circuit and allocates its reserved node.
func New() *Circuit {
	c := &Circuit{
		Edges:  make([]Edge, 0, stdDim),
		GI:     newAdjGraph(),
		GV:     newAdjGraph(),
		Forced: slist.New[int](),
	}
	c.Reserved = c.NextVirtualNode()
	return c
}

// NextVirtualNode allocates a fresh virtual node id (≥ LIMIT), used by
// component handlers that need an internal node not visible in the netlist.
func (c *Circuit) NextVirtualNode() NodeID {
	id := NodeID(LIMIT + c.offset)
	c.offset++
	return id
}

// addEdge appends a new edge with the given four endpoints to both graphs,
// updates the adjacency structures and NNum, and returns the new edge's
// index. NNum tracks one past the highest non-virtual node id seen, the way
// circ_addedge does in the original.
func (c *Circuit) addEdge(git, gih, gvt, gvh NodeID) int {
	idx := len(c.Edges)
	c.Edges = append(c.Edges, Edge{GI: [2]NodeID{git, gih}, GV: [2]NodeID{gvt, gvh}})

	c.GI.addCell(git, gih, idx)
	c.GI.addCell(gih, git, idx)
	c.GV.addCell(gvt, gvh, idx)
	c.GV.addCell(gvh, gvt, idx)

	c.EdNum++
	for _, n := range [4]NodeID{git, gih, gvt, gvh} {
		if n < LIMIT && int(n)+1 > c.NNum {
			c.NNum = int(n) + 1
		}
	}
	return idx
}

// AddSimple adds a Z/Y/YRef/GRef branch: edge type and degree are caller-
// supplied, tail/head in G_I independent from tail/head in G_V (a controlled
// source's output and control terminals need not coincide).
func (c *Circuit) AddSimple(nt, nh, ntc, nhc NodeID, name string, typ EdgeType, degree int, value float64, sym bool) (int, error) {
	if c == nil {
		return -1, ErrNilCircuit
	}
	idx := c.addEdge(nt, nh, ntc, nhc)
	e := &c.Edges[idx]
	e.Name = name
	e.Type = typ
	e.Degree = degree
	e.Value = value
	e.Sym = sym
	return idx, nil
}

// AddForced adds a nullor (forced) edge, recording it on the Forced list and
// bumping EfNum. Forced edges always carry Type F, Degree 0.
func (c *Circuit) AddForced(nt, nh, ntc, nhc NodeID, name string, value float64, sym bool) (int, error) {
	if c == nil {
		return -1, ErrNilCircuit
	}
	idx := c.addEdge(nt, nh, ntc, nhc)
	e := &c.Edges[idx]
	e.Name = name
	e.Type = F
	e.Value = value
	e.Sym = sym
	c.EfNum++
	c.Forced.PushFront(idx)
	return idx, nil
}

// SetBlock closes the circuit for analysis by adding the YRef and GRef
// synthetic edges, once Reference, Reserved, and Onode are all set to a
// nonzero node — mirroring setblock's literal "all three nonzero" check
// (BaseNode defaulting to 0 is therefore implicitly excluded, same as the
// original). It then validates onode against the invariant the driver must
// refuse to proceed without: onode < nnum and onode != basenode. Call this
// after Normalize so NNum already reflects every folded-in virtual node.
func (c *Circuit) SetBlock() error {
	if c == nil {
		return ErrNilCircuit
	}
	if c.Reference == 0 || c.Reserved == 0 || c.Onode == 0 {
		return ErrIncompleteBlock
	}
	if c.Onode >= NodeID(c.NNum) || c.Onode == c.BaseNode {
		return ErrInvalidOutputNode
	}

	yref, err := c.AddSimple(c.Reference, c.Reserved, c.Reference, c.Reserved, "", YRef, 0, 1, false)
	if err != nil {
		return err
	}
	c.YRef = &yref

	gref, err := c.AddSimple(c.Reference, c.Reserved, c.BaseNode, c.Onode, "", GRef, 0, 1, false)
	if err != nil {
		return err
	}
	c.GRef = &gref

	return nil
}

// Normalize remaps every virtual node id (≥ LIMIT) to a dense id in
// [NNum, NNum+offset), then folds that range into NNum. Reference and
// Reserved — the only fields that can hold a virtual id — are remapped too;
// BaseNode and Onode are always real netlist nodes and are left untouched.
func (c *Circuit) Normalize() error {
	if c == nil {
		return ErrNilCircuit
	}
	nnum := c.NNum
	remap := func(n NodeID) NodeID {
		if n >= LIMIT {
			return NodeID(nnum) + (n - LIMIT)
		}
		return n
	}

	c.GI.renumber(remap)
	c.GV.renumber(remap)
	for i := range c.Edges {
		e := &c.Edges[i]
		e.GI[0], e.GI[1] = remap(e.GI[0]), remap(e.GI[1])
		e.GV[0], e.GV[1] = remap(e.GV[0]), remap(e.GV[1])
	}

	c.Reference = remap(c.Reference)
	c.Reserved = remap(c.Reserved)

	c.NNum += c.offset
	c.offset = 0
	return nil
}

// Endpoints returns edge pos's tail/head in G_I and G_V, satisfying
// spantree.EdgeSource.
func (c *Circuit) Endpoints(pos int) (giTail, giHead, gvTail, gvHead int) {
	e := c.Edges[pos]
	return int(e.GI[0]), int(e.GI[1]), int(e.GV[0]), int(e.GV[1])
}
