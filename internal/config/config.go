package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// BackendFile persists snapshots to a local JSON file.
	BackendFile = "file"
	// BackendRedis persists snapshots to Redis.
	BackendRedis = "redis"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SeedFile      string        // optional YAML file of seed posts (empty = built-in seed)
	AutosaveQuiet time.Duration // editor autosave quiet period (default: 10s)

	// Snapshot persistence
	SnapshotBackend string // "file" (default) or "redis"
	SnapshotFile    string // path for the file backend

	// Redis (only used when SnapshotBackend == "redis")
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDialTimeout    time.Duration // ex: 5s
	RedisReadTimeout    time.Duration // ex: 3s
	RedisWriteTimeout   time.Duration // ex: 3s
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout per ping attempt
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	// .env support for local runs; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{
		ListenPort:      getenv("IDEAHUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("IDEAHUB_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("IDEAHUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("IDEAHUB_PRETTY_LOG", true),

		SeedFile:      getenv("IDEAHUB_SEED_FILE", ""),
		AutosaveQuiet: mustDuration("IDEAHUB_AUTOSAVE_QUIET", 10*time.Second),

		SnapshotBackend: getenv("IDEAHUB_SNAPSHOT_BACKEND", BackendFile),
		SnapshotFile:    getenv("IDEAHUB_SNAPSHOT_FILE", "ideahub.json"),

		RedisAddr:           getenv("IDEAHUB_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("IDEAHUB_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("IDEAHUB_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("IDEAHUB_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	if cfg.SnapshotBackend != BackendFile && cfg.SnapshotBackend != BackendRedis {
		panic(fmt.Sprintf("❌ FATAL: Invalid IDEAHUB_SNAPSHOT_BACKEND %q (want %q or %q)",
			cfg.SnapshotBackend, BackendFile, BackendRedis))
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
