// Package planner answers shortest- and fastest-path queries over a
// Configuration, fusing the street map and bus system into two graphs on
// first use and reusing them for every later query.
package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/ttpr0/tripplanner/config"
	"github.com/ttpr0/tripplanner/graphbuild"
	"github.com/ttpr0/tripplanner/indexer"
	"github.com/ttpr0/tripplanner/router"
	"github.com/ttpr0/tripplanner/streetmap"
)

// Mode is the means of travel used to arrive at a trip step.
type Mode = graphbuild.Mode

const (
	Walk = graphbuild.Walk
	Bike = graphbuild.Bike
	Bus  = graphbuild.Bus
)

// NoPathExists is the sentinel distance/time returned when no path
// connects the requested endpoints.
var NoPathExists = router.NoPathExists

// TripStep is one unit of a fastest-path itinerary: the mode used to
// arrive at NodeID. The first step of a path always carries mode Walk
// (the origin).
type TripStep struct {
	Mode   Mode
	NodeID streetmap.NodeID
}

// Planner answers queries against one Configuration. It is not safe for
// concurrent use until the first query has completed and built its
// caches; callers needing parallel queries should construct one planner
// per worker.
type Planner struct {
	cfg     *config.Configuration
	indexer *indexer.Indexer

	sortedNodes []streetmap.Node

	built         bool
	distanceGraph *graphbuild.DistanceGraph
	timeGraph     *graphbuild.TimeGraph
}

// New constructs a planner around cfg. Building the adjacency graphs is
// deferred to the first path query.
func New(cfg *config.Configuration) *Planner {
	return &Planner{
		cfg:     cfg,
		indexer: indexer.New(cfg.BusSystem()),
	}
}

// Indexer exposes the bus-system indexer built over the configuration's
// bus system. The planner's own path queries do not use it.
func (self *Planner) Indexer() *indexer.Indexer {
	return self.indexer
}

// NodeCount returns the number of nodes in the underlying street map.
func (self *Planner) NodeCount() int {
	return self.cfg.StreetMap().NodeCount()
}

// SortedNodeByIndex returns the i-th street node in ascending NodeID
// order. The sorted listing is materialised once and cached.
func (self *Planner) SortedNodeByIndex(i int) (streetmap.Node, bool) {
	self.ensureSortedNodes()
	if i < 0 || i >= len(self.sortedNodes) {
		return nil, false
	}
	return self.sortedNodes[i], true
}

func (self *Planner) ensureSortedNodes() {
	if self.sortedNodes != nil {
		return
	}
	sm := self.cfg.StreetMap()
	nodes := make([]streetmap.Node, 0, sm.NodeCount())
	for i := 0; i < sm.NodeCount(); i++ {
		n, ok := sm.NodeByIndex(i)
		if !ok {
			continue
		}
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID() < nodes[j].ID()
	})
	self.sortedNodes = nodes
}

func (self *Planner) ensureBuilt() {
	if self.built {
		return
	}
	self.distanceGraph = graphbuild.BuildDistanceGraph(self.cfg)
	self.timeGraph = graphbuild.BuildTimeGraph(self.cfg)
	self.built = true
}

// FindShortestPath runs Dijkstra on the distance graph, returning the
// total distance in miles and filling path with the node sequence from
// src to dest inclusive. Returns NoPathExists (and empties path) for
// unknown or unreachable endpoints; returns 0 and [src] when src == dest.
func (self *Planner) FindShortestPath(src, dest streetmap.NodeID, path *[]streetmap.NodeID) float64 {
	self.ensureBuilt()
	*path = (*path)[:0]

	srcV, ok := self.distanceGraph.VertexOf(src)
	if !ok {
		return NoPathExists
	}
	destV, ok := self.distanceGraph.VertexOf(dest)
	if !ok {
		return NoPathExists
	}

	var vpath []router.VertexID
	dist := self.distanceGraph.FindShortestPath(srcV, destV, &vpath)
	if math.IsInf(dist, 1) {
		return NoPathExists
	}

	for _, v := range vpath {
		node, _ := self.distanceGraph.NodeOf(v)
		*path = append(*path, node)
	}
	return dist
}

// FindFastestPath runs Dijkstra on the time graph, returning the total
// time in hours and filling steps with the mode-annotated node sequence
// from src to dest inclusive. Returns NoPathExists (and empties steps)
// for unknown or unreachable endpoints; returns 0 and [(Walk, src)] when
// src == dest.
func (self *Planner) FindFastestPath(src, dest streetmap.NodeID, steps *[]TripStep) float64 {
	self.ensureBuilt()
	*steps = (*steps)[:0]

	srcV, ok := self.timeGraph.VertexOf(src)
	if !ok {
		return NoPathExists
	}
	destV, ok := self.timeGraph.VertexOf(dest)
	if !ok {
		return NoPathExists
	}

	var modeSteps []graphbuild.ModeStep
	hours := self.timeGraph.FindFastestPath(srcV, destV, &modeSteps)
	if math.IsInf(hours, 1) {
		return NoPathExists
	}

	for _, ms := range modeSteps {
		node, _ := self.timeGraph.NodeOf(ms.Vertex)
		*steps = append(*steps, TripStep{Mode: ms.Mode, NodeID: node})
	}
	return hours
}

// GetPathDescription renders each step of a fastest path into one
// human-readable line, in order.
func (self *Planner) GetPathDescription(steps []TripStep, desc *[]string) bool {
	*desc = (*desc)[:0]
	for _, step := range steps {
		*desc = append(*desc, fmt.Sprintf("%s to node %d", verb(step.Mode), step.NodeID))
	}
	return true
}

func verb(mode Mode) string {
	switch mode {
	case Walk:
		return "Walk"
	case Bike:
		return "Bike"
	case Bus:
		return "Take bus"
	default:
		return "Walk"
	}
}
