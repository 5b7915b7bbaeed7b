package streetmap

import "github.com/ttpr0/tripplanner/geo"

//*******************************************
// in-memory node/way
//*******************************************

type memNode struct {
	id    NodeID
	loc   geo.Location
	attrs map[string]string
	keys  []string
}

func (self *memNode) ID() NodeID             { return self.id }
func (self *memNode) Location() geo.Location { return self.loc }
func (self *memNode) AttributeCount() int    { return len(self.keys) }
func (self *memNode) AttributeKey(i int) string {
	if i < 0 || i >= len(self.keys) {
		return ""
	}
	return self.keys[i]
}
func (self *memNode) AttributeValue(i int) string {
	if i < 0 || i >= len(self.keys) {
		return ""
	}
	return self.attrs[self.keys[i]]
}
func (self *memNode) Attribute(key string) (string, bool) {
	v, ok := self.attrs[key]
	return v, ok
}

type memWay struct {
	id    WayID
	nodes []NodeID
	attrs map[string]string
	keys  []string
}

func (self *memWay) ID() WayID      { return self.id }
func (self *memWay) NodeCount() int { return len(self.nodes) }
func (self *memWay) GetNodeID(i int) NodeID {
	if i < 0 || i >= len(self.nodes) {
		return InvalidNodeID
	}
	return self.nodes[i]
}
func (self *memWay) AttributeCount() int { return len(self.keys) }
func (self *memWay) AttributeKey(i int) string {
	if i < 0 || i >= len(self.keys) {
		return ""
	}
	return self.keys[i]
}
func (self *memWay) AttributeValue(i int) string {
	if i < 0 || i >= len(self.keys) {
		return ""
	}
	return self.attrs[self.keys[i]]
}
func (self *memWay) Attribute(key string) (string, bool) {
	v, ok := self.attrs[key]
	return v, ok
}

//*******************************************
// in-memory street map
//*******************************************

var _ StreetMap = &MemoryStreetMap{}

// MemoryStreetMap is a plain in-memory StreetMap, populated by a Builder
// and never mutated afterwards.
type MemoryStreetMap struct {
	nodes     []*memNode
	ways      []*memWay
	nodeByID  map[NodeID]int
	wayByID   map[WayID]int
}

func (self *MemoryStreetMap) NodeCount() int { return len(self.nodes) }
func (self *MemoryStreetMap) WayCount() int  { return len(self.ways) }

func (self *MemoryStreetMap) NodeByIndex(i int) (Node, bool) {
	if i < 0 || i >= len(self.nodes) {
		return nil, false
	}
	return self.nodes[i], true
}
func (self *MemoryStreetMap) NodeByID(id NodeID) (Node, bool) {
	idx, ok := self.nodeByID[id]
	if !ok {
		return nil, false
	}
	return self.nodes[idx], true
}
func (self *MemoryStreetMap) WayByIndex(i int) (Way, bool) {
	if i < 0 || i >= len(self.ways) {
		return nil, false
	}
	return self.ways[i], true
}
func (self *MemoryStreetMap) WayByID(id WayID) (Way, bool) {
	idx, ok := self.wayByID[id]
	if !ok {
		return nil, false
	}
	return self.ways[idx], true
}

//*******************************************
// builder
//*******************************************

// Builder assembles a MemoryStreetMap incrementally. It is the collecting
// point for ingesters (OSM XML, synthetic test fixtures, ...).
type Builder struct {
	nodes    []*memNode
	ways     []*memWay
	nodeByID map[NodeID]int
	wayByID  map[WayID]int
}

func NewBuilder() *Builder {
	return &Builder{
		nodeByID: make(map[NodeID]int, 1024),
		wayByID:  make(map[WayID]int, 256),
	}
}

// AddNode appends a node. Attributes with empty keys are dropped; a node
// with an ID already present is ignored.
func (self *Builder) AddNode(id NodeID, loc geo.Location, attrs map[string]string) {
	if _, exists := self.nodeByID[id]; exists {
		return
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k == "" {
			continue
		}
		keys = append(keys, k)
	}
	n := &memNode{id: id, loc: loc, attrs: attrs, keys: keys}
	self.nodeByID[id] = len(self.nodes)
	self.nodes = append(self.nodes, n)
}

// AddWay appends a way. NodeIDs that do not exist in the builder are
// dropped from the way's node list (the invariant from spec 3: violators
// are skipped).
func (self *Builder) AddWay(id WayID, nodeIDs []NodeID, attrs map[string]string) {
	if _, exists := self.wayByID[id]; exists {
		return
	}
	kept := make([]NodeID, 0, len(nodeIDs))
	for _, nid := range nodeIDs {
		if _, ok := self.nodeByID[nid]; !ok {
			continue
		}
		kept = append(kept, nid)
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k == "" {
			continue
		}
		keys = append(keys, k)
	}
	w := &memWay{id: id, nodes: kept, attrs: attrs, keys: keys}
	self.wayByID[id] = len(self.ways)
	self.ways = append(self.ways, w)
}

// Build finalizes the street map. The Builder must not be reused afterwards.
func (self *Builder) Build() *MemoryStreetMap {
	return &MemoryStreetMap{
		nodes:    self.nodes,
		ways:     self.ways,
		nodeByID: self.nodeByID,
		wayByID:  self.wayByID,
	}
}
