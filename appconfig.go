package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// AppConfig is the on-disk description of where to find the two input
// files and how to tune the planner and the surrounding service.
type AppConfig struct {
	StreetMap struct {
		OSMXML string `yaml:"osm-xml"`
	} `yaml:"streetmap"`
	BusSystem struct {
		StopsCSV  string `yaml:"stops-csv"`
		RoutesCSV string `yaml:"routes-csv"`
	} `yaml:"bussystem"`
	Planner struct {
		WalkSpeedMPH         float64 `yaml:"walk-speed-mph"`
		BikeSpeedMPH         float64 `yaml:"bike-speed-mph"`
		DefaultSpeedLimitMPH float64 `yaml:"default-speed-limit-mph"`
		BusStopTimeSeconds   int     `yaml:"bus-stop-time-seconds"`
	} `yaml:"planner"`
	HTTP struct {
		Listen string `yaml:"listen"`
	} `yaml:"http"`
	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`
}

// LoadAppConfig reads and parses the YAML file at path.
func LoadAppConfig(path string) (*AppConfig, error) {
	slog.Info("reading app config", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("appconfig: read %s: %w", path, err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("appconfig: parse %s: %w", path, err)
	}
	if cfg.HTTP.Listen == "" {
		cfg.HTTP.Listen = ":5002"
	}
	return &cfg, nil
}

// BusStopTime converts the configured dwell time to a time.Duration.
func (self *AppConfig) BusStopTime() time.Duration {
	return time.Duration(self.Planner.BusStopTimeSeconds) * time.Second
}
