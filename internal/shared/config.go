package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	DiningCSV   string
	LodgingCSV  string
	DefaultCity string
	ResultLimit int
	RateRPS     int
	CacheTTL    time.Duration
	RefreshIntv time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		DiningCSV:   env("DINING_CSV", "zomato.csv"),
		LodgingCSV:  env("LODGING_CSV", "oyobanglore.csv"),
		DefaultCity: env("DEFAULT_CITY", "bangalore"),
		ResultLimit: atoi("RESULT_LIMIT", 10),
		RateRPS:     atoi("RATE_LIMIT_RPS", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		RefreshIntv: time.Duration(atoi("REFRESH_SECONDS", 0)) * time.Second,
	}
	if c.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR is empty; response caching disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
