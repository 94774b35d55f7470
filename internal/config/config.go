package config

import (
	"os"
	"time"
)

// Config carries everything the daemons read from the environment. Defaults
// match a local dev setup: the catalog API on :5000, Mongo and Redis on
// their standard ports. Redis is opt-in; with no REDIS_ADDR the admin daemon
// runs without a snapshot cache.
type Config struct {
	Port           string
	CatalogBaseURL string
	MongoURI       string
	MongoDatabase  string
	RedisAddr      string
	SnapshotTTL    time.Duration
}

// FromEnv reads configuration from the environment, applying defaults for
// anything unset.
func FromEnv() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		CatalogBaseURL: getenv("CATALOG_API_URL", "http://localhost:5000/api"),
		MongoURI:       getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getenv("MONGODB_DATABASE", "atelier"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		SnapshotTTL:    getduration("SNAPSHOT_TTL", 24*time.Hour),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
