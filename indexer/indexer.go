// Package indexer augments a bussystem.BusSystem with the lookups the
// planner needs but the raw interface doesn't provide: sorted listings,
// stop-by-node, and route-covers-segment. Everything is built lazily on
// first use and cached for the indexer's lifetime, which is safe because
// the wrapped bus system is immutable once constructed.
package indexer

import (
	"sort"

	"github.com/ttpr0/tripplanner/bussystem"
	"github.com/ttpr0/tripplanner/streetmap"
)

// Indexer wraps a bussystem.BusSystem with cached lookups.
type Indexer struct {
	system bussystem.BusSystem

	sortedStopsBuilt bool
	sortedStops      []bussystem.Stop

	sortedRoutesBuilt bool
	sortedRoutes      []bussystem.Route

	stopByNodeBuilt bool
	stopByNode      map[streetmap.NodeID]bussystem.Stop
}

// New wraps system with an indexer. Nothing is built until first use.
func New(system bussystem.BusSystem) *Indexer {
	return &Indexer{system: system}
}

// StopCount passes through to the wrapped bus system.
func (self *Indexer) StopCount() int { return self.system.StopCount() }

// RouteCount passes through to the wrapped bus system.
func (self *Indexer) RouteCount() int { return self.system.RouteCount() }

// SortedStopByIndex returns the i-th stop in ascending StopID order.
func (self *Indexer) SortedStopByIndex(i int) (bussystem.Stop, bool) {
	self.buildSortedStops()
	if i < 0 || i >= len(self.sortedStops) {
		return nil, false
	}
	return self.sortedStops[i], true
}

func (self *Indexer) buildSortedStops() {
	if self.sortedStopsBuilt {
		return
	}
	n := self.system.StopCount()
	stops := make([]bussystem.Stop, 0, n)
	for i := 0; i < n; i++ {
		s, ok := self.system.StopByIndex(i)
		if !ok {
			continue
		}
		stops = append(stops, s)
	}
	sort.Slice(stops, func(i, j int) bool {
		return stops[i].ID() < stops[j].ID()
	})
	self.sortedStops = stops
	self.sortedStopsBuilt = true
}

// SortedRouteByIndex returns the i-th route in ascending Name order
// (lexicographic by code point).
func (self *Indexer) SortedRouteByIndex(i int) (bussystem.Route, bool) {
	self.buildSortedRoutes()
	if i < 0 || i >= len(self.sortedRoutes) {
		return nil, false
	}
	return self.sortedRoutes[i], true
}

func (self *Indexer) buildSortedRoutes() {
	if self.sortedRoutesBuilt {
		return
	}
	n := self.system.RouteCount()
	routes := make([]bussystem.Route, 0, n)
	for i := 0; i < n; i++ {
		r, ok := self.system.RouteByIndex(i)
		if !ok {
			continue
		}
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Name() < routes[j].Name()
	})
	self.sortedRoutes = routes
	self.sortedRoutesBuilt = true
}

// StopByNodeID returns the unique stop anchored to nodeID, if any.
func (self *Indexer) StopByNodeID(nodeID streetmap.NodeID) (bussystem.Stop, bool) {
	self.buildStopByNode()
	s, ok := self.stopByNode[nodeID]
	return s, ok
}

func (self *Indexer) buildStopByNode() {
	if self.stopByNodeBuilt {
		return
	}
	n := self.system.StopCount()
	m := make(map[streetmap.NodeID]bussystem.Stop, n)
	for i := 0; i < n; i++ {
		s, ok := self.system.StopByIndex(i)
		if !ok {
			continue
		}
		m[s.NodeID()] = s
	}
	self.stopByNode = m
	self.stopByNodeBuilt = true
}

// RoutesByNodeIDs returns every route that contains srcNode's stop
// followed (not necessarily immediately) by destNode's stop, along with
// true. Returns (nil, false) if either node is not a stop or no such
// route exists.
func (self *Indexer) RoutesByNodeIDs(srcNode, destNode streetmap.NodeID) ([]bussystem.Route, bool) {
	srcStop, ok := self.StopByNodeID(srcNode)
	if !ok {
		return nil, false
	}
	destStop, ok := self.StopByNodeID(destNode)
	if !ok {
		return nil, false
	}

	var found []bussystem.Route
	n := self.system.RouteCount()
	for i := 0; i < n; i++ {
		route, ok := self.system.RouteByIndex(i)
		if !ok {
			continue
		}
		if routeCoversSegment(route, srcStop.ID(), destStop.ID()) {
			found = append(found, route)
		}
	}
	if len(found) == 0 {
		return nil, false
	}
	return found, true
}

// RouteBetweenNodeIDs is a boolean convenience over RoutesByNodeIDs.
func (self *Indexer) RouteBetweenNodeIDs(srcNode, destNode streetmap.NodeID) bool {
	_, ok := self.RoutesByNodeIDs(srcNode, destNode)
	return ok
}

func routeCoversSegment(route bussystem.Route, src, dest bussystem.StopID) bool {
	seenSrc := false
	for i := 0; i < route.StopCount(); i++ {
		id := route.GetStopID(i)
		if id == src {
			seenSrc = true
			continue
		}
		if seenSrc && id == dest {
			return true
		}
	}
	return false
}
