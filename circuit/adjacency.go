package circuit

import (
	"sort"

	"github.com/sapecng/symcirc/slist"
)

// tailCell is one entry in a head node's tail sublist: a neighbor reached by
// a specific edge.
type tailCell struct {
	Peer NodeID
	Edge int
}

// headNode is one vertex's adjacency entry: the node id plus the unsorted
// list of edges touching it from the tail side, most recently added first
// (cells are pushed to the front, per spec.md §4.2).
type headNode struct {
	Node  NodeID
	Tails *slist.List[tailCell]
}

// adjGraph is an ordered head list (sorted by NodeID, binary-search insert)
// with a per-head tail sublist. It exists to maintain the four-adjacency-
// cells-per-edge invariant and to answer neighbor queries; the evaluator and
// enumerator read edge endpoints directly off Edge instead of traversing
// this structure (see DESIGN.md's circuit entry).
type adjGraph struct {
	heads []*headNode
}

func newAdjGraph() *adjGraph {
	return &adjGraph{}
}

// headFor returns the headNode for id, creating and inserting it in sorted
// position if absent.
func (g *adjGraph) headFor(id NodeID) *headNode {
	i := sort.Search(len(g.heads), func(i int) bool { return g.heads[i].Node >= id })
	if i < len(g.heads) && g.heads[i].Node == id {
		return g.heads[i]
	}
	h := &headNode{Node: id, Tails: slist.New[tailCell]()}
	g.heads = append(g.heads, nil)
	copy(g.heads[i+1:], g.heads[i:])
	g.heads[i] = h
	return h
}

// addCell records that edgeIdx connects node to peer, from node's side.
func (g *adjGraph) addCell(node, peer NodeID, edgeIdx int) {
	g.headFor(node).Tails.PushFront(tailCell{Peer: peer, Edge: edgeIdx})
}

// Neighbors returns the peers reachable from id, most recently added first.
func (g *adjGraph) Neighbors(id NodeID) []NodeID {
	i := sort.Search(len(g.heads), func(i int) bool { return g.heads[i].Node >= id })
	if i >= len(g.heads) || g.heads[i].Node != id {
		return nil
	}
	cells := g.heads[i].Tails.Values()
	out := make([]NodeID, len(cells))
	for k, c := range cells {
		out[k] = c.Peer
	}
	return out
}

// renumber applies remap to every head's node id and every tail cell's peer
// id in place. Because remap is strictly monotonic on the virtual-id range
// (see Normalize), the heads slice stays sorted without needing a re-sort.
func (g *adjGraph) renumber(remap func(NodeID) NodeID) {
	for _, h := range g.heads {
		h.Node = remap(h.Node)
		for n := h.Tails.Front(); n != nil; n = n.Next() {
			n.Value.Peer = remap(n.Value.Peer)
		}
	}
}
