// Package httpapi exposes a planner over HTTP. Handlers depend only on
// planner's exported query methods, never on the graph-building
// internals; the cache is an optional accelerator that a nil pointer
// disables cleanly.
package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ttpr0/tripplanner/cache"
	"github.com/ttpr0/tripplanner/planner"
	"github.com/ttpr0/tripplanner/streetmap"
)

// Server wires a planner and an optional cache into a fiber app.
type Server struct {
	app     *fiber.App
	planner *planner.Planner
	cache   *cache.Cache
}

// New builds the fiber app and registers routes. Pass a nil cache to
// run with memoization disabled.
func New(p *planner.Planner, c *cache.Cache) *Server {
	app := fiber.New(fiber.Config{
		AppName: "tripplanner",
	})

	s := &Server{app: app, planner: p, cache: c}

	app.Use(s.correlate)

	app.Get("/healthz", s.handleHealth)
	app.Get("/v1/nodes/count", s.handleNodeCount)
	app.Get("/v1/shortest", s.handleShortest)
	app.Get("/v1/fastest", s.handleFastest)

	return s
}

// Listen starts serving on addr; blocks until the server stops.
func (self *Server) Listen(addr string) error {
	return self.app.Listen(addr)
}

func (self *Server) correlate(c *fiber.Ctx) error {
	id := uuid.NewString()
	c.Locals("requestID", id)
	c.Set("X-Request-ID", id)
	return c.Next()
}

func (self *Server) handleHealth(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func (self *Server) handleNodeCount(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"count": self.planner.NodeCount()})
}

type shortestResponse struct {
	DistanceMiles float64             `json:"distanceMiles"`
	Path          []streetmap.NodeID `json:"path"`
}

func (self *Server) handleShortest(c *fiber.Ctx) error {
	src, dest, err := parseEndpoints(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	key := cache.ShortestPathKey(uint64(src), uint64(dest))
	var cached shortestResponse
	if hit, _ := self.cache.Get(c.Context(), key, &cached); hit {
		return c.JSON(cached)
	}

	var path []streetmap.NodeID
	dist := self.planner.FindShortestPath(src, dest, &path)
	if dist == planner.NoPathExists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no path"})
	}

	resp := shortestResponse{DistanceMiles: dist, Path: path}
	self.cache.Set(c.Context(), key, resp)
	return c.JSON(resp)
}

type tripStepJSON struct {
	Mode string           `json:"mode"`
	Node streetmap.NodeID `json:"node"`
}

type fastestResponse struct {
	Hours       float64        `json:"hours"`
	Steps       []tripStepJSON `json:"steps"`
	Description []string       `json:"description"`
}

func (self *Server) handleFastest(c *fiber.Ctx) error {
	src, dest, err := parseEndpoints(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	key := cache.FastestPathKey(uint64(src), uint64(dest))
	var cached fastestResponse
	if hit, _ := self.cache.Get(c.Context(), key, &cached); hit {
		return c.JSON(cached)
	}

	var steps []planner.TripStep
	hours := self.planner.FindFastestPath(src, dest, &steps)
	if hours == planner.NoPathExists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no path"})
	}

	var desc []string
	self.planner.GetPathDescription(steps, &desc)

	jsonSteps := make([]tripStepJSON, 0, len(steps))
	for _, step := range steps {
		jsonSteps = append(jsonSteps, tripStepJSON{Mode: modeString(step.Mode), Node: step.NodeID})
	}

	resp := fastestResponse{Hours: hours, Steps: jsonSteps, Description: desc}
	self.cache.Set(c.Context(), key, resp)
	return c.JSON(resp)
}

func parseEndpoints(c *fiber.Ctx) (streetmap.NodeID, streetmap.NodeID, error) {
	src, err := strconv.ParseUint(c.Query("src"), 10, 64)
	if err != nil {
		return 0, 0, errInvalidNode("src")
	}
	dest, err := strconv.ParseUint(c.Query("dest"), 10, 64)
	if err != nil {
		return 0, 0, errInvalidNode("dest")
	}
	return streetmap.NodeID(src), streetmap.NodeID(dest), nil
}

type errInvalidNode string

func (self errInvalidNode) Error() string {
	return "invalid or missing '" + string(self) + "' query parameter"
}

func modeString(m planner.Mode) string {
	switch m {
	case planner.Walk:
		return "walk"
	case planner.Bike:
		return "bike"
	case planner.Bus:
		return "bus"
	default:
		return "walk"
	}
}
