// Package config is the engine's environment-driven configuration:
// os.Getenv reads with hardcoded defaults, no config file format.
package config

import (
	"os"
	"strconv"
)

// Config holds every environment-tunable knob: the BPM used to convert
// every host event's duration, HTTP/WS bind addresses, the Redis URL
// for internal/snapshot, and the shard count for internal/shard.
type Config struct {
	DefaultBPM    float32
	HTTPAddr      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ShardCount    int
}

// FromEnv populates a Config from the process environment, falling
// back to the defaults below for anything unset.
func FromEnv() Config {
	return Config{
		DefaultBPM:    envFloat32("TRACKS_DEFAULT_BPM", 120),
		HTTPAddr:      envString("TRACKS_HTTP_ADDR", ":8090"),
		RedisAddr:     envString("TRACKS_REDIS_ADDR", "localhost:6379"),
		RedisPassword: envString("TRACKS_REDIS_PASSWORD", ""),
		RedisDB:       envInt("TRACKS_REDIS_DB", 0),
		ShardCount:    envInt("TRACKS_SHARD_COUNT", 4),
	}
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat32(key string, fallback float32) float32 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return fallback
	}
	return float32(f)
}
