package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Addr string

	// Landmark shown before any position fix exists.
	LandmarkName   string
	LandmarkLat    float64
	LandmarkLng    float64
	LatitudeDelta  float64
	LongitudeDelta float64

	// Simulated device knobs.
	DenyPermission  bool
	PermissionError bool
	FailRate        float64
	FixLatency      time.Duration
	FixesPerSec     float64

	Debug bool
}

// Load parses command line flags and environment variables to populate Config.
// Flags take precedence over environment variables.
func Load() *Config {
	cfg := &Config{}

	// Defaults and Environment Variables
	cfg.Addr = getEnv("MYGEO_ADDR", ":8080")
	cfg.LandmarkName = getEnv("MYGEO_LANDMARK", "Constanța")
	cfg.LandmarkLat = getEnvFloat("MYGEO_LAT", 44.1765)
	cfg.LandmarkLng = getEnvFloat("MYGEO_LNG", 28.6520)
	cfg.LatitudeDelta = getEnvFloat("MYGEO_LAT_DELTA", 0.0922)
	cfg.LongitudeDelta = getEnvFloat("MYGEO_LNG_DELTA", 0.0421)
	cfg.DenyPermission = getEnvBool("MYGEO_DENY_PERMISSION", false)
	cfg.PermissionError = getEnvBool("MYGEO_PERMISSION_ERROR", false)
	cfg.FailRate = getEnvFloat("MYGEO_FAIL_RATE", 0)
	cfg.FixLatency = time.Duration(getEnvFloat("MYGEO_FIX_LATENCY_MS", 0)) * time.Millisecond
	cfg.FixesPerSec = getEnvFloat("MYGEO_FIXES_PER_SEC", 2)

	// Command Line Flags (Override Env)
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP server address")
	flag.StringVar(&cfg.LandmarkName, "landmark", cfg.LandmarkName, "Landmark name shown before a fix exists")
	flag.Float64Var(&cfg.LandmarkLat, "lat", cfg.LandmarkLat, "Landmark latitude")
	flag.Float64Var(&cfg.LandmarkLng, "lng", cfg.LandmarkLng, "Landmark longitude")
	flag.Float64Var(&cfg.LatitudeDelta, "lat-delta", cfg.LatitudeDelta, "Default viewport latitude span in degrees")
	flag.Float64Var(&cfg.LongitudeDelta, "lng-delta", cfg.LongitudeDelta, "Default viewport longitude span in degrees")
	flag.BoolVar(&cfg.DenyPermission, "deny-permission", cfg.DenyPermission, "Simulated prompt resolves as a user denial")
	flag.BoolVar(&cfg.PermissionError, "permission-error", cfg.PermissionError, "Simulated permission service fails")
	flag.Float64Var(&cfg.FailRate, "fail-rate", cfg.FailRate, "Probability [0,1] that a simulated fix fails")
	flag.DurationVar(&cfg.FixLatency, "fix-latency", cfg.FixLatency, "Latency of every simulated device response")
	flag.Float64Var(&cfg.FixesPerSec, "fixes-per-sec", cfg.FixesPerSec, "Simulated receiver fix rate")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable verbose debug logging")

	flag.Parse()

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
