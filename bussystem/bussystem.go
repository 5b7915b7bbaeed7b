// Package bussystem defines the read-only bus-system contract the planner
// overlays on the street network, plus an in-memory implementation.
package bussystem

import "github.com/ttpr0/tripplanner/streetmap"

// StopID identifies a bus stop. Unique per bus system.
type StopID uint64

// InvalidStopID is the sentinel returned when no such stop exists.
const InvalidStopID StopID = 0

// Stop anchors a bus stop to exactly one street node.
type Stop interface {
	ID() StopID
	NodeID() streetmap.NodeID
}

// Route is an ordered sequence of stops served by one bus line.
// Consecutive stops define a directed travel segment; order matters.
type Route interface {
	Name() string
	StopCount() int
	GetStopID(i int) StopID
}

// BusSystem is the external collaborator the planner overlays on the
// street map; it is populated by an ingester and never mutated once
// handed to a planner.
type BusSystem interface {
	StopCount() int
	RouteCount() int
	StopByIndex(i int) (Stop, bool)
	StopByID(id StopID) (Stop, bool)
	RouteByIndex(i int) (Route, bool)
	RouteByName(name string) (Route, bool)
}
