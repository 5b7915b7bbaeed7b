package graphbuild

import (
	"strconv"
	"strings"

	"github.com/ttpr0/tripplanner/streetmap"
)

// waySpeedMPH parses a way's posted maxspeed attribute, in the "<n> mph"
// form the spec prescribes. Returns false if the attribute is absent or
// unparsable.
func waySpeedMPH(way streetmap.Way) (float64, bool) {
	raw, ok := way.Attribute("maxspeed")
	if !ok {
		return 0, false
	}
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "mph")
	raw = strings.TrimSuffix(raw, "MPH")
	raw = strings.TrimSpace(raw)
	speed, err := strconv.ParseFloat(raw, 64)
	if err != nil || speed <= 0 {
		return 0, false
	}
	return speed, true
}

// nodePair is an unordered pair of node IDs, used to key a way segment
// regardless of the direction it was traversed in.
type nodePair struct {
	a, b streetmap.NodeID
}

func makeNodePair(x, y streetmap.NodeID) nodePair {
	if x > y {
		x, y = y, x
	}
	return nodePair{a: x, b: y}
}
