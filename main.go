package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/ttpr0/tripplanner/bussystem/buscsv"
	appcache "github.com/ttpr0/tripplanner/cache"
	"github.com/ttpr0/tripplanner/config"
	"github.com/ttpr0/tripplanner/httpapi"
	"github.com/ttpr0/tripplanner/planner"
	"github.com/ttpr0/tripplanner/streetmap"
	"github.com/ttpr0/tripplanner/streetmap/osmxml"
)

func main() {
	godotenv.Load()

	logger := slog.New(newLogHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configPath := "./config.yaml"
	if len(os.Args) > 1 && os.Args[1] != "serve" {
		configPath = os.Args[1]
	}

	appcfg, err := LoadAppConfig(configPath)
	if err != nil {
		slog.Error("failed to load app config", "error", err)
		os.Exit(1)
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		appcfg.Redis.Addr = v
	}
	if v := os.Getenv("HTTP_LISTEN"); v != "" {
		appcfg.HTTP.Listen = v
	}

	sm, err := osmxml.Load(appcfg.StreetMap.OSMXML)
	if err != nil {
		slog.Error("failed to load street map", "error", err)
		os.Exit(1)
	}
	bs, err := buscsv.Load(appcfg.BusSystem.StopsCSV, appcfg.BusSystem.RoutesCSV)
	if err != nil {
		slog.Error("failed to load bus system", "error", err)
		os.Exit(1)
	}

	opts := []config.Option{}
	if appcfg.Planner.WalkSpeedMPH > 0 {
		opts = append(opts, config.WithWalkSpeed(appcfg.Planner.WalkSpeedMPH))
	}
	if appcfg.Planner.BikeSpeedMPH > 0 {
		opts = append(opts, config.WithBikeSpeed(appcfg.Planner.BikeSpeedMPH))
	}
	if appcfg.Planner.DefaultSpeedLimitMPH > 0 {
		opts = append(opts, config.WithDefaultSpeedLimit(appcfg.Planner.DefaultSpeedLimitMPH))
	}
	if appcfg.Planner.BusStopTimeSeconds > 0 {
		opts = append(opts, config.WithBusStopTime(appcfg.BusStopTime()))
	}

	cfg, err := config.New(sm, bs, opts...)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	p := planner.New(cfg)

	slog.Info("loaded map", "nodes", sm.NodeCount(), "ways", sm.WayCount(), "stops", bs.StopCount(), "routes", bs.RouteCount())

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		runServer(p, appcfg)
		return
	}
	runREPL(p, sm, os.Stdin, os.Stdout, os.Stderr)
}

func runServer(p *planner.Planner, appcfg *AppConfig) {
	c := appcache.New(appcfg.Redis.Addr, appcache.DefaultTTL)
	defer c.Close()

	srv := httpapi.New(p, c)
	slog.Info("listening", "addr", appcfg.HTTP.Listen)
	if err := srv.Listen(appcfg.HTTP.Listen); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// runREPL implements the command surface: help/?, exit/quit, node <id>,
// shortest <src> <dest>, fastest <src> <dest>. Output goes to out,
// diagnostics to errout.
func runREPL(p *planner.Planner, sm streetmap.StreetMap, in io.Reader, out, errout io.Writer) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "tripplanner ready. type 'help' for commands.")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]

		switch cmd {
		case "help", "?":
			printHelp(out)
		case "exit", "quit":
			return
		case "node":
			handleNode(sm, fields, out, errout)
		case "shortest":
			handleShortest(p, fields, out, errout)
		case "fastest":
			handleFastest(p, fields, out, errout)
		default:
			fmt.Fprintf(errout, "unknown command: %s\n", cmd)
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  help | ?                     show this message")
	fmt.Fprintln(out, "  exit | quit                  quit")
	fmt.Fprintln(out, "  node <id>                    show a street node")
	fmt.Fprintln(out, "  shortest <src> <dest>        shortest path by distance")
	fmt.Fprintln(out, "  fastest <src> <dest>         fastest path by time")
}

func handleNode(sm streetmap.StreetMap, fields []string, out, errout io.Writer) {
	if len(fields) != 2 {
		fmt.Fprintln(errout, "usage: node <id>")
		return
	}
	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		fmt.Fprintln(errout, "invalid node id:", fields[1])
		return
	}
	node, ok := sm.NodeByID(streetmap.NodeID(id))
	if !ok {
		fmt.Fprintln(out, "no such node")
		return
	}
	loc := node.Location()
	fmt.Fprintf(out, "node %d: (%.6f, %.6f)\n", id, loc.Lat, loc.Lon)
}

func handleShortest(p *planner.Planner, fields []string, out, errout io.Writer) {
	src, dest, err := parsePair(fields)
	if err != nil {
		fmt.Fprintln(errout, "usage: shortest <src> <dest>")
		return
	}
	var path []streetmap.NodeID
	dist := p.FindShortestPath(streetmap.NodeID(src), streetmap.NodeID(dest), &path)
	if dist == planner.NoPathExists {
		fmt.Fprintln(out, "no path")
		return
	}
	fmt.Fprintf(out, "%.3f miles: %v\n", dist, path)
}

func handleFastest(p *planner.Planner, fields []string, out, errout io.Writer) {
	src, dest, err := parsePair(fields)
	if err != nil {
		fmt.Fprintln(errout, "usage: fastest <src> <dest>")
		return
	}
	var steps []planner.TripStep
	hours := p.FindFastestPath(streetmap.NodeID(src), streetmap.NodeID(dest), &steps)
	if hours == planner.NoPathExists {
		fmt.Fprintln(out, "no path")
		return
	}
	var desc []string
	p.GetPathDescription(steps, &desc)
	fmt.Fprintf(out, "%.3f hours:\n", hours)
	for _, line := range desc {
		fmt.Fprintln(out, "  "+line)
	}
}

func parsePair(fields []string) (uint64, uint64, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("expected 2 arguments")
	}
	src, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	dest, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return src, dest, nil
}
