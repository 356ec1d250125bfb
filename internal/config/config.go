package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	// Database
	DBDriver string // "sqlite" or "mysql"
	DBPath   string // sqlite file path
	DBDSN    string // mysql DSN

	// AI provider keys; either may be empty, which disables that vendor.
	GoogleAPIKey     string
	GroqAPIKey       string
	AITimeoutSeconds int

	// Redis (optional hot cache in front of ai_routes_cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTTLHours int

	// RabbitMQ (async advice jobs)
	RabbitURL   string
	RabbitQueue string
}

func Load() Config {
	// Load .env if present; plain env vars otherwise.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on env vars")
	}

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = "0.0.0.0:8000"
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "aroh_ezay.db"
	}

	aiTimeout := 30
	if v := os.Getenv("AI_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			aiTimeout = n
		}
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	redisTTL := 72
	if v := os.Getenv("REDIS_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			redisTTL = n
		}
	}

	rabbitQueue := os.Getenv("RABBIT_QUEUE")
	if rabbitQueue == "" {
		rabbitQueue = "advice_jobs"
	}

	return Config{
		HTTPAddr: httpAddr,

		DBDriver: driver,
		DBPath:   dbPath,
		DBDSN:    os.Getenv("DB_DSN"),

		GoogleAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),
		AITimeoutSeconds: aiTimeout,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		RedisTTLHours: redisTTL,

		RabbitURL:   os.Getenv("RABBIT_URL"),
		RabbitQueue: rabbitQueue,
	}
}
