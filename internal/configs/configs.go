package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RedisEnabled           bool
	RedisAddr              string
	CreateRateLimit        int
	CreateRateWindow       time.Duration
	RateLimit              int
	ActivityWorkers        int
	ActivityQueueSize      int
	JWTSecret              string
	ShutdownTimeoutSeconds int

	APIURL   string
	APIToken string

	Debug bool
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	return Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		RedisEnabled:           getEnvAsBool("REDIS_ENABLED", false),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		CreateRateLimit:        getEnvAsInt("CREATE_RATE_LIMIT", 5),
		CreateRateWindow:       getEnvAsDuration("CREATE_RATE_WINDOW", time.Minute),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		ActivityWorkers:        getEnvAsInt("ACTIVITY_WORKERS", 2),
		ActivityQueueSize:      getEnvAsInt("ACTIVITY_QUEUE_SIZE", 100),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		APIURL:                 getEnv("API_URL", "http://"+appHost+":"+appPort),
		APIToken:               os.Getenv("API_TOKEN"),
		Debug:                  getEnvAsBool("DEBUG", false),
	}
}

// LoadServer loads the configuration and exits on settings the API server
// cannot run with.
func LoadServer() Config {
	cfg := Load()
	if err := cfg.validateServer(); err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (cfg Config) validateServer() error {
	switch {
	case cfg.AppURL == "":
		return fmt.Errorf("APP_HOST and APP_PORT must not be empty")
	case cfg.DatabaseDSN == "":
		return fmt.Errorf("DATABASE_DSN must not be empty")
	case cfg.JWTSecret == "":
		return fmt.Errorf("JWT_SECRET must not be empty")
	case cfg.CreateRateLimit <= 0:
		return fmt.Errorf("CREATE_RATE_LIMIT must be greater than 0")
	case cfg.CreateRateWindow <= 0:
		return fmt.Errorf("CREATE_RATE_WINDOW must be greater than 0")
	case cfg.RateLimit <= 0:
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	case cfg.ActivityWorkers <= 0:
		return fmt.Errorf("ACTIVITY_WORKERS must be greater than 0")
	case cfg.ActivityQueueSize <= 0:
		return fmt.Errorf("ACTIVITY_QUEUE_SIZE must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid duration value for %s", key)
		}
		return d
	}
	return defaultVal
}
