// Package config holds the Configuration value-object: references to a
// street map and a bus system plus the tunables the graph builder and
// planner need. Configuration is immutable after construction.
package config

import (
	"errors"
	"time"

	"github.com/ttpr0/tripplanner/bussystem"
	"github.com/ttpr0/tripplanner/streetmap"
)

// Defaults, per spec.
const (
	DefaultWalkSpeed        = 3.0
	DefaultBikeSpeed        = 8.0
	DefaultSpeedLimit       = 25.0
	DefaultBusStopTime      = 30 * time.Second
	NoPrecomputeTimeLimit   = 0 // PrecomputeTime == 0 means "no limit"
)

// Configuration is an immutable value-object built around one street
// map and one bus system. Neither is copied; both must outlive it.
type Configuration struct {
	streetMap         streetmap.StreetMap
	busSystem         bussystem.BusSystem
	walkSpeed         float64
	bikeSpeed         float64
	defaultSpeedLimit float64
	busStopTime       time.Duration
	precomputeTime    time.Duration
}

// Option customises a Configuration at construction time.
type Option func(*Configuration) error

// WithWalkSpeed overrides the default walking speed (mph). Must be > 0.
func WithWalkSpeed(mph float64) Option {
	return func(c *Configuration) error {
		if mph <= 0 {
			return errors.New("config: walk speed must be positive")
		}
		c.walkSpeed = mph
		return nil
	}
}

// WithBikeSpeed overrides the default biking speed (mph). Must be > 0.
func WithBikeSpeed(mph float64) Option {
	return func(c *Configuration) error {
		if mph <= 0 {
			return errors.New("config: bike speed must be positive")
		}
		c.bikeSpeed = mph
		return nil
	}
}

// WithDefaultSpeedLimit overrides the fallback speed limit (mph) used
// for buses and for ways without a posted maxspeed. Must be > 0.
func WithDefaultSpeedLimit(mph float64) Option {
	return func(c *Configuration) error {
		if mph <= 0 {
			return errors.New("config: default speed limit must be positive")
		}
		c.defaultSpeedLimit = mph
		return nil
	}
}

// WithBusStopTime overrides the bus dwell time charged per hop.
func WithBusStopTime(d time.Duration) Option {
	return func(c *Configuration) error {
		if d < 0 {
			return errors.New("config: bus stop time must not be negative")
		}
		c.busStopTime = d
		return nil
	}
}

// WithPrecomputeTime bounds the time a planner may spend precomputing.
// Zero means no limit.
func WithPrecomputeTime(d time.Duration) Option {
	return func(c *Configuration) error {
		if d < 0 {
			return errors.New("config: precompute time must not be negative")
		}
		c.precomputeTime = d
		return nil
	}
}

// New builds a Configuration around streetMap and busSystem, applying
// opts over the spec defaults. Returns an error if either collaborator
// is nil or an option rejects its value; the caller must not construct
// a planner around a failed Configuration.
func New(streetMap streetmap.StreetMap, busSystem bussystem.BusSystem, opts ...Option) (*Configuration, error) {
	if streetMap == nil {
		return nil, errors.New("config: street map must not be nil")
	}
	if busSystem == nil {
		return nil, errors.New("config: bus system must not be nil")
	}

	c := &Configuration{
		streetMap:         streetMap,
		busSystem:         busSystem,
		walkSpeed:         DefaultWalkSpeed,
		bikeSpeed:         DefaultBikeSpeed,
		defaultSpeedLimit: DefaultSpeedLimit,
		busStopTime:       DefaultBusStopTime,
		precomputeTime:    NoPrecomputeTimeLimit,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (self *Configuration) StreetMap() streetmap.StreetMap { return self.streetMap }
func (self *Configuration) BusSystem() bussystem.BusSystem { return self.busSystem }
func (self *Configuration) WalkSpeed() float64 { return self.walkSpeed }
func (self *Configuration) BikeSpeed() float64 { return self.bikeSpeed }
func (self *Configuration) DefaultSpeedLimit() float64 { return self.defaultSpeedLimit }
func (self *Configuration) BusStopTime() time.Duration { return self.busStopTime }
func (self *Configuration) PrecomputeTime() time.Duration { return self.precomputeTime }

