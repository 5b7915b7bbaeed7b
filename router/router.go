// Package router provides a generic weighted directed graph with
// per-vertex tags and a Dijkstra shortest-path search. It underlies the
// planner's distance graph; the planner's mode-annotated time graph uses
// its own specialised search (see graphbuild) because its edges carry an
// extra label the generic router has no notion of.
package router

import (
	"container/heap"
	"math"
	"time"
)

// VertexID is a dense index assigned sequentially as vertices are added.
type VertexID int32

// NoPathExists is the sentinel distance returned when no path connects
// two vertices, or when either endpoint is invalid.
var NoPathExists = math.Inf(1)

type edge struct {
	to     VertexID
	weight float64
}

// PathRouter is a generic weighted directed graph with opaque per-vertex
// tags of type T. The zero value is not usable; construct with New.
type PathRouter[T any] struct {
	tags  []T
	edges [][]edge
}

// New creates an empty path router.
func New[T any]() *PathRouter[T] {
	return &PathRouter[T]{}
}

// VertexCount returns the number of vertices in the router.
func (self *PathRouter[T]) VertexCount() int {
	return len(self.tags)
}

// AddVertex appends a vertex carrying tag and returns its assigned ID.
// Never fails.
func (self *PathRouter[T]) AddVertex(tag T) VertexID {
	self.tags = append(self.tags, tag)
	self.edges = append(self.edges, nil)
	return VertexID(len(self.tags) - 1)
}

// GetVertexTag returns the tag of id, or the zero value and false if id
// is out of range.
func (self *PathRouter[T]) GetVertexTag(id VertexID) (T, bool) {
	if !self.isVertex(id) {
		var zero T
		return zero, false
	}
	return self.tags[id], true
}

func (self *PathRouter[T]) isVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(self.tags)
}

// AddEdge adds a directed edge from src to dest weighing weight. If
// bidirectional is true, the reverse edge is also added with the same
// weight. Rejects (returns false, adds nothing) when either endpoint is
// out of range or weight is non-positive: Dijkstra needs strictly
// positive weights to terminate with an optimal result.
func (self *PathRouter[T]) AddEdge(src, dest VertexID, weight float64, bidirectional bool) bool {
	if !self.isVertex(src) || !self.isVertex(dest) || weight <= 0 {
		return false
	}
	self.edges[src] = append(self.edges[src], edge{to: dest, weight: weight})
	if bidirectional {
		self.edges[dest] = append(self.edges[dest], edge{to: src, weight: weight})
	}
	return true
}

// Precompute lets the router do preparatory work up to deadline. The
// plain Dijkstra router has nothing to precompute.
func (self *PathRouter[T]) Precompute(deadline time.Time) bool {
	return true
}

// FindShortestPath runs Dijkstra from src to dest and returns the total
// weight of the shortest path, filling path with the vertex sequence
// from src to dest inclusive. Returns NoPathExists (and empties path) if
// either endpoint is invalid or dest is unreachable. If src == dest,
// returns 0 with path == [src].
func (self *PathRouter[T]) FindShortestPath(src, dest VertexID, path *[]VertexID) float64 {
	*path = (*path)[:0]
	if !self.isVertex(src) || !self.isVertex(dest) {
		return NoPathExists
	}
	if src == dest {
		*path = append(*path, src)
		return 0
	}

	n := len(self.tags)
	dist := make([]float64, n)
	pred := make([]VertexID, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Inf(1)
		pred[i] = -1
	}
	dist[src] = 0

	pq := &priorityQueue{{vertex: src, dist: 0}}
	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		if top.dist > dist[top.vertex] {
			continue // stale entry, lazily dropped
		}
		if top.vertex == dest {
			break
		}
		for _, e := range self.edges[top.vertex] {
			next := top.dist + e.weight
			if next < dist[e.to] {
				dist[e.to] = next
				pred[e.to] = top.vertex
				heap.Push(pq, pqItem{vertex: e.to, dist: next})
			}
		}
	}

	if math.IsInf(dist[dest], 1) {
		return NoPathExists
	}

	reversed := make([]VertexID, 0, 8)
	for v := dest; v != src; v = pred[v] {
		reversed = append(reversed, v)
	}
	reversed = append(reversed, src)
	for i := len(reversed) - 1; i >= 0; i-- {
		*path = append(*path, reversed[i])
	}
	return dist[dest]
}

//*******************************************
// min-heap of (vertex, tentative distance)
//*******************************************

type pqItem struct {
	vertex VertexID
	dist   float64
}

type priorityQueue []pqItem

func (self priorityQueue) Len() int            { return len(self) }
func (self priorityQueue) Less(i, j int) bool  { return self[i].dist < self[j].dist }
func (self priorityQueue) Swap(i, j int)       { self[i], self[j] = self[j], self[i] }
func (self *priorityQueue) Push(x interface{}) { *self = append(*self, x.(pqItem)) }
func (self *priorityQueue) Pop() interface{} {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}
