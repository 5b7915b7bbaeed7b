// Package osmxml ingests an OpenStreetMap XML export into a
// streetmap.StreetMap. It is one of the out-of-scope collaborators named
// in the planner specification: a thin adapter over the paulmach/osm
// event-style XML scanner, contributing nothing to the core algorithms.
package osmxml

import (
	"bytes"
	"context"
	"os"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"golang.org/x/exp/slog"

	"github.com/ttpr0/tripplanner/geo"
	"github.com/ttpr0/tripplanner/streetmap"
)

// Load reads an OSM XML file and returns the street map it describes.
// A scan error stops the scan: it is logged and the map built from the
// elements read before it is returned, with a nil error. Elements after
// the error are not read. Way references to nodes not yet read are
// dropped by the builder without a diagnostic.
func Load(path string) (*streetmap.MemoryStreetMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	builder := streetmap.NewBuilder()

	scanner := osmxml.New(context.Background(), bytes.NewReader(data))
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			builder.AddNode(
				streetmap.NodeID(o.ID),
				geo.Location{Lat: o.Lat, Lon: o.Lon},
				o.Tags.Map(),
			)
		case *osm.Way:
			ids := make([]streetmap.NodeID, 0, len(o.Nodes))
			for _, wn := range o.Nodes {
				ids = append(ids, streetmap.NodeID(wn.ID))
			}
			builder.AddWay(streetmap.WayID(o.ID), ids, o.Tags.Map())
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Error("osm xml scan stopped early: " + err.Error())
	}

	return builder.Build(), nil
}
