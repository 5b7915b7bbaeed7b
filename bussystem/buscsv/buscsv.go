// Package buscsv ingests the stops/routes CSV wire format described by
// the planner specification into a bussystem.BusSystem. Like the OSM
// ingester, it is an out-of-scope collaborator: standard parsing glue,
// not part of the planner core.
package buscsv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"golang.org/x/exp/slog"

	"github.com/ttpr0/tripplanner/bussystem"
	"github.com/ttpr0/tripplanner/streetmap"
)

// Load reads a stops file (rows "StopID,NodeID") and a routes file (rows
// "RouteName,StopID") into a bus system. A leading header row in either
// file is optional and is detected by a failure to parse the first row's
// numeric fields (both fields of a stops row, the StopID of a routes
// row); malformed rows are skipped with a diagnostic and the load
// continues.
func Load(stopsFile, routesFile string) (*bussystem.MemoryBusSystem, error) {
	builder := bussystem.NewBuilder()

	if err := loadStops(stopsFile, builder); err != nil {
		return nil, err
	}
	if err := loadRoutes(routesFile, builder); err != nil {
		return nil, err
	}

	return builder.Build(), nil
}

func loadStops(path string, builder *bussystem.Builder) error {
	records, err := readAllRows(path)
	if err != nil {
		return err
	}
	for lineno, row := range records {
		if len(row) != 2 {
			slog.Warn("skipping malformed stop row", "line", lineno+1, "row", row)
			continue
		}
		stopID, err1 := strconv.ParseUint(row[0], 10, 64)
		nodeID, err2 := strconv.ParseUint(row[1], 10, 64)
		if err1 != nil || err2 != nil {
			if lineno == 0 {
				// likely a header row
				continue
			}
			slog.Warn("skipping malformed stop row", "line", lineno+1, "row", row)
			continue
		}
		builder.AddStop(bussystem.StopID(stopID), streetmap.NodeID(nodeID))
	}
	return nil
}

func loadRoutes(path string, builder *bussystem.Builder) error {
	records, err := readAllRows(path)
	if err != nil {
		return err
	}
	for lineno, row := range records {
		if len(row) != 2 {
			slog.Warn("skipping malformed route row", "line", lineno+1, "row", row)
			continue
		}
		stopID, err := strconv.ParseUint(row[1], 10, 64)
		if err != nil {
			if lineno == 0 {
				// likely a header row
				continue
			}
			slog.Warn("skipping malformed route row", "line", lineno+1, "row", row)
			continue
		}
		builder.AddRouteStop(row[0], bussystem.StopID(stopID))
	}
	return nil
}

func readAllRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows := make([][]string, 0, 256)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("skipping malformed csv row: " + err.Error())
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
