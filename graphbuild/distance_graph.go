package graphbuild

import (
	"github.com/ttpr0/tripplanner/config"
	"github.com/ttpr0/tripplanner/geo"
	"github.com/ttpr0/tripplanner/router"
	"github.com/ttpr0/tripplanner/streetmap"
)

// DistanceGraph is the distance-weighted undirected street graph: one
// vertex per street-map node, tagged with its NodeID, with a pair of
// directed edges per way segment weighted by haversine distance.
type DistanceGraph struct {
	router   *router.PathRouter[streetmap.NodeID]
	vertexOf map[streetmap.NodeID]router.VertexID
}

// VertexOf returns the graph vertex for a street node, if any.
func (self *DistanceGraph) VertexOf(id streetmap.NodeID) (router.VertexID, bool) {
	v, ok := self.vertexOf[id]
	return v, ok
}

// NodeOf returns the street node tagged onto a graph vertex.
func (self *DistanceGraph) NodeOf(v router.VertexID) (streetmap.NodeID, bool) {
	return self.router.GetVertexTag(v)
}

// FindShortestPath delegates to the underlying router.
func (self *DistanceGraph) FindShortestPath(src, dest router.VertexID, path *[]router.VertexID) float64 {
	return self.router.FindShortestPath(src, dest, path)
}

// BuildDistanceGraph derives the distance graph from cfg's street map.
// Every street-map node becomes a vertex, whether or not any way touches
// it; every consecutive node pair within a way contributes a
// bidirectional edge weighted by great-circle distance in miles. Pairs
// referencing a node missing from the street map are skipped.
func BuildDistanceGraph(cfg *config.Configuration) *DistanceGraph {
	sm := cfg.StreetMap()

	r := router.New[streetmap.NodeID]()
	vertexOf := make(map[streetmap.NodeID]router.VertexID, sm.NodeCount())
	for i := 0; i < sm.NodeCount(); i++ {
		node, ok := sm.NodeByIndex(i)
		if !ok {
			continue
		}
		vertexOf[node.ID()] = r.AddVertex(node.ID())
	}

	for i := 0; i < sm.WayCount(); i++ {
		way, ok := sm.WayByIndex(i)
		if !ok {
			continue
		}
		for j := 0; j+1 < way.NodeCount(); j++ {
			u := way.GetNodeID(j)
			v := way.GetNodeID(j + 1)
			uNode, ok1 := sm.NodeByID(u)
			vNode, ok2 := sm.NodeByID(v)
			if !ok1 || !ok2 {
				continue
			}
			dist := geo.Haversine(uNode.Location(), vNode.Location())
			r.AddEdge(vertexOf[u], vertexOf[v], dist, true)
		}
	}

	return &DistanceGraph{router: r, vertexOf: vertexOf}
}
