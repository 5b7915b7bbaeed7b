package bussystem

import "github.com/ttpr0/tripplanner/streetmap"

//*******************************************
// in-memory stop/route
//*******************************************

type memStop struct {
	id     StopID
	nodeID streetmap.NodeID
}

func (self *memStop) ID() StopID                { return self.id }
func (self *memStop) NodeID() streetmap.NodeID   { return self.nodeID }

type memRoute struct {
	name  string
	stops []StopID
}

func (self *memRoute) Name() string      { return self.name }
func (self *memRoute) StopCount() int    { return len(self.stops) }
func (self *memRoute) GetStopID(i int) StopID {
	if i < 0 || i >= len(self.stops) {
		return InvalidStopID
	}
	return self.stops[i]
}

//*******************************************
// in-memory bus system
//*******************************************

var _ BusSystem = &MemoryBusSystem{}

// MemoryBusSystem is a plain in-memory BusSystem, populated by a Builder
// and never mutated afterwards.
type MemoryBusSystem struct {
	stops       []*memStop
	routes      []*memRoute
	stopByID    map[StopID]int
	routeByName map[string]int
}

func (self *MemoryBusSystem) StopCount() int  { return len(self.stops) }
func (self *MemoryBusSystem) RouteCount() int { return len(self.routes) }

func (self *MemoryBusSystem) StopByIndex(i int) (Stop, bool) {
	if i < 0 || i >= len(self.stops) {
		return nil, false
	}
	return self.stops[i], true
}
func (self *MemoryBusSystem) StopByID(id StopID) (Stop, bool) {
	idx, ok := self.stopByID[id]
	if !ok {
		return nil, false
	}
	return self.stops[idx], true
}
func (self *MemoryBusSystem) RouteByIndex(i int) (Route, bool) {
	if i < 0 || i >= len(self.routes) {
		return nil, false
	}
	return self.routes[i], true
}
func (self *MemoryBusSystem) RouteByName(name string) (Route, bool) {
	idx, ok := self.routeByName[name]
	if !ok {
		return nil, false
	}
	return self.routes[idx], true
}

//*******************************************
// builder
//*******************************************

// Builder assembles a MemoryBusSystem incrementally. Routes aggregate by
// name, keeping stops in the order of the AddRouteStop calls; a repeated
// stop is appended again (the CSV wire format groups rows this way).
type Builder struct {
	stops       []*memStop
	stopByID    map[StopID]int
	routes      []*memRoute
	routeByName map[string]int
}

func NewBuilder() *Builder {
	return &Builder{
		stopByID:    make(map[StopID]int, 256),
		routeByName: make(map[string]int, 32),
	}
}

// AddStop appends a stop. A stop with an ID already present is ignored.
func (self *Builder) AddStop(id StopID, nodeID streetmap.NodeID) {
	if _, exists := self.stopByID[id]; exists {
		return
	}
	s := &memStop{id: id, nodeID: nodeID}
	self.stopByID[id] = len(self.stops)
	self.stops = append(self.stops, s)
}

// AddRouteStop appends stopID to the end of the named route, creating the
// route on first use. Stop IDs unknown to the builder are dropped.
func (self *Builder) AddRouteStop(routeName string, stopID StopID) {
	if _, ok := self.stopByID[stopID]; !ok {
		return
	}
	idx, ok := self.routeByName[routeName]
	if !ok {
		r := &memRoute{name: routeName}
		self.routeByName[routeName] = len(self.routes)
		self.routes = append(self.routes, r)
		idx = len(self.routes) - 1
	}
	self.routes[idx].stops = append(self.routes[idx].stops, stopID)
}

// Build finalizes the bus system. The Builder must not be reused afterwards.
func (self *Builder) Build() *MemoryBusSystem {
	return &MemoryBusSystem{
		stops:       self.stops,
		routes:      self.routes,
		stopByID:    self.stopByID,
		routeByName: self.routeByName,
	}
}
