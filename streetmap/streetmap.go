// Package streetmap defines the read-only street network contract the
// planner builds its graphs from, plus an in-memory implementation.
package streetmap

import "github.com/ttpr0/tripplanner/geo"

// NodeID identifies a street node. Stable across the lifetime of a loaded map.
type NodeID uint64

// InvalidNodeID is the sentinel returned when no such node exists.
const InvalidNodeID NodeID = 0

// WayID identifies a way. Unique per loaded map.
type WayID uint64

// Node is a single street-network vertex.
type Node interface {
	ID() NodeID
	Location() geo.Location
	AttributeCount() int
	AttributeKey(i int) string
	AttributeValue(i int) string
	Attribute(key string) (string, bool)
}

// Way is an ordered polyline of node IDs representing a road segment.
type Way interface {
	ID() WayID
	NodeCount() int
	GetNodeID(i int) NodeID
	AttributeCount() int
	AttributeKey(i int) string
	AttributeValue(i int) string
	Attribute(key string) (string, bool)
}

// StreetMap is the external collaborator the planner consumes; it is
// populated by an ingester (OSM XML, or any other source) and never
// mutated once handed to a planner.
type StreetMap interface {
	NodeCount() int
	WayCount() int
	NodeByIndex(i int) (Node, bool)
	NodeByID(id NodeID) (Node, bool)
	WayByIndex(i int) (Way, bool)
	WayByID(id WayID) (Way, bool)
}
