package graphbuild

import (
	"container/heap"
	"math"

	"github.com/ttpr0/tripplanner/config"
	"github.com/ttpr0/tripplanner/geo"
	"github.com/ttpr0/tripplanner/streetmap"
)

// TimeVertexID is a dense index into a TimeGraph, distinct from
// router.VertexID: the time graph is its own mode-annotated multigraph
// rather than an instance of the generic path router (see the router
// package doc).
type TimeVertexID int32

// NoPathExists is the sentinel returned when no path exists in the time
// graph, matching router.NoPathExists.
var NoPathExists = math.Inf(1)

type timeEdge struct {
	to     TimeVertexID
	weight float64
	mode   Mode
}

// ModeStep is one hop of a reconstructed fastest path: the mode used to
// arrive at vertex.
type ModeStep struct {
	Mode   Mode
	Vertex TimeVertexID
}

// TimeGraph is the mode-annotated multigraph over which fastest-path
// queries run. Edges are stored as flat (dest, weight, mode) tuples per
// adjacency entry rather than as three parallel graphs, so a single
// Dijkstra pass picks the best mode at every hop.
type TimeGraph struct {
	nodeOf   []streetmap.NodeID
	vertexOf map[streetmap.NodeID]TimeVertexID
	adj      [][]timeEdge
}

// VertexOf returns the graph vertex for a street node, if any.
func (self *TimeGraph) VertexOf(id streetmap.NodeID) (TimeVertexID, bool) {
	v, ok := self.vertexOf[id]
	return v, ok
}

// NodeOf returns the street node tagged onto a graph vertex.
func (self *TimeGraph) NodeOf(v TimeVertexID) (streetmap.NodeID, bool) {
	if v < 0 || int(v) >= len(self.nodeOf) {
		return 0, false
	}
	return self.nodeOf[v], true
}

func (self *TimeGraph) isVertex(v TimeVertexID) bool {
	return v >= 0 && int(v) < len(self.nodeOf)
}

func (self *TimeGraph) addEdge(from, to TimeVertexID, weight float64, mode Mode) {
	if weight <= 0 {
		return
	}
	self.adj[from] = append(self.adj[from], timeEdge{to: to, weight: weight, mode: mode})
}

// FindFastestPath runs Dijkstra over the mode-annotated graph, filling
// steps with the (mode, vertex) sequence from src to dest inclusive; the
// first step always carries mode Walk (the origin). Returns NoPathExists
// (and empties steps) if either endpoint is invalid or dest is
// unreachable. If src == dest, returns 0 with steps == [(Walk, src)].
func (self *TimeGraph) FindFastestPath(src, dest TimeVertexID, steps *[]ModeStep) float64 {
	*steps = (*steps)[:0]
	if !self.isVertex(src) || !self.isVertex(dest) {
		return NoPathExists
	}
	if src == dest {
		*steps = append(*steps, ModeStep{Mode: Walk, Vertex: src})
		return 0
	}

	n := len(self.nodeOf)
	dist := make([]float64, n)
	predVertex := make([]TimeVertexID, n)
	predMode := make([]Mode, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Inf(1)
		predVertex[i] = -1
	}
	dist[src] = 0

	pq := &timePQ{{vertex: src, dist: 0}}
	for pq.Len() > 0 {
		top := heap.Pop(pq).(timePQItem)
		if top.dist > dist[top.vertex] {
			continue
		}
		if top.vertex == dest {
			break
		}
		for _, e := range self.adj[top.vertex] {
			next := top.dist + e.weight
			if next < dist[e.to] {
				dist[e.to] = next
				predVertex[e.to] = top.vertex
				predMode[e.to] = e.mode
				heap.Push(pq, timePQItem{vertex: e.to, dist: next})
			}
		}
	}

	if math.IsInf(dist[dest], 1) {
		return NoPathExists
	}

	reversed := make([]ModeStep, 0, 8)
	for v := dest; v != src; v = predVertex[v] {
		reversed = append(reversed, ModeStep{Mode: predMode[v], Vertex: v})
	}
	reversed = append(reversed, ModeStep{Mode: Walk, Vertex: src})
	for i := len(reversed) - 1; i >= 0; i-- {
		*steps = append(*steps, reversed[i])
	}
	return dist[dest]
}

// BuildTimeGraph derives the mode-annotated time graph from cfg. Every
// street-map node becomes a vertex. Each way segment contributes four
// directed edges (walk and bike, both directions); each bus route
// contributes one directed edge per consecutive stop pair, weighted by
// the bus hop's travel time. A segment's posted maxspeed (if any) is
// preferred over cfg.DefaultSpeedLimit when pricing bus hops that
// overlap it.
func BuildTimeGraph(cfg *config.Configuration) *TimeGraph {
	sm := cfg.StreetMap()
	bs := cfg.BusSystem()

	vertexOf := make(map[streetmap.NodeID]TimeVertexID, sm.NodeCount())
	nodeOf := make([]streetmap.NodeID, 0, sm.NodeCount())
	for i := 0; i < sm.NodeCount(); i++ {
		node, ok := sm.NodeByIndex(i)
		if !ok {
			continue
		}
		vertexOf[node.ID()] = TimeVertexID(len(nodeOf))
		nodeOf = append(nodeOf, node.ID())
	}

	g := &TimeGraph{
		nodeOf:   nodeOf,
		vertexOf: vertexOf,
		adj:      make([][]timeEdge, len(nodeOf)),
	}

	waySpeedByPair := make(map[nodePair]float64, sm.WayCount())

	for i := 0; i < sm.WayCount(); i++ {
		way, ok := sm.WayByIndex(i)
		if !ok {
			continue
		}
		speed, hasSpeed := waySpeedMPH(way)

		for j := 0; j+1 < way.NodeCount(); j++ {
			u := way.GetNodeID(j)
			v := way.GetNodeID(j + 1)
			uNode, ok1 := sm.NodeByID(u)
			vNode, ok2 := sm.NodeByID(v)
			if !ok1 || !ok2 {
				continue
			}
			if hasSpeed {
				waySpeedByPair[makeNodePair(u, v)] = speed
			}

			dist := geo.Haversine(uNode.Location(), vNode.Location())
			walkTime := dist / cfg.WalkSpeed()
			bikeTime := dist / cfg.BikeSpeed()

			uv, vv := vertexOf[u], vertexOf[v]
			g.addEdge(uv, vv, walkTime, Walk)
			g.addEdge(vv, uv, walkTime, Walk)
			g.addEdge(uv, vv, bikeTime, Bike)
			g.addEdge(vv, uv, bikeTime, Bike)
		}
	}

	dwell := cfg.BusStopTime().Hours()
	for i := 0; i < bs.RouteCount(); i++ {
		route, ok := bs.RouteByIndex(i)
		if !ok {
			continue
		}
		for j := 0; j+1 < route.StopCount(); j++ {
			aStop, ok1 := bs.StopByID(route.GetStopID(j))
			bStop, ok2 := bs.StopByID(route.GetStopID(j + 1))
			if !ok1 || !ok2 {
				continue
			}
			aNode, ok3 := sm.NodeByID(aStop.NodeID())
			bNode, ok4 := sm.NodeByID(bStop.NodeID())
			if !ok3 || !ok4 {
				continue
			}

			speed, hasSpeed := waySpeedByPair[makeNodePair(aStop.NodeID(), bStop.NodeID())]
			if !hasSpeed {
				speed = cfg.DefaultSpeedLimit()
			}

			dist := geo.Haversine(aNode.Location(), bNode.Location())
			hopTime := dist/speed + dwell

			av, bv := vertexOf[aStop.NodeID()], vertexOf[bStop.NodeID()]
			g.addEdge(av, bv, hopTime, Bus)
		}
	}

	return g
}

//*******************************************
// min-heap of (vertex, tentative time)
//*******************************************

type timePQItem struct {
	vertex TimeVertexID
	dist   float64
}

type timePQ []timePQItem

func (self timePQ) Len() int            { return len(self) }
func (self timePQ) Less(i, j int) bool  { return self[i].dist < self[j].dist }
func (self timePQ) Swap(i, j int)       { self[i], self[j] = self[j], self[i] }
func (self *timePQ) Push(x interface{}) { *self = append(*self, x.(timePQItem)) }
func (self *timePQ) Pop() interface{} {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}
