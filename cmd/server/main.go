package main

import (
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	logrus "github.com/sirupsen/logrus"

	"github.com/arohezay/backend/internal/advisor"
	"github.com/arohezay/backend/internal/ai"
	"github.com/arohezay/backend/internal/aicache"
	"github.com/arohezay/backend/internal/catalog"
	"github.com/arohezay/backend/internal/config"
	"github.com/arohezay/backend/internal/db"
	"github.com/arohezay/backend/internal/httpapi"
	"github.com/arohezay/backend/internal/logger"
	"github.com/arohezay/backend/internal/store/rabbitmq"
)

func main() {
	logger.Setup()
	cfg := config.Load()

	gdb := db.Connect(cfg)

	cat := catalog.NewStore(gdb)

	cache := aicache.NewStore(gdb)
	if cfg.RedisAddr != "" {
		rds := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cache = cache.WithRedis(rds, time.Duration(cfg.RedisTTLHours)*time.Hour)
	}

	if cfg.GoogleAPIKey == "" {
		logrus.Warn("GOOGLE_API_KEY not set, Gemini models disabled")
	}
	if cfg.GroqAPIKey == "" {
		logrus.Warn("GROQ_API_KEY not set, Groq last resort disabled")
	}
	chain := ai.DefaultChain(cfg.GoogleAPIKey, cfg.GroqAPIKey, time.Duration(cfg.AITimeoutSeconds)*time.Second)

	svc := advisor.NewService(cat, cache, chain)
	jobs := advisor.NewJobs(gdb)

	var rabbit *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		rabbit, err = rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			logrus.WithError(err).Warn("rabbit unavailable, async search disabled")
			rabbit = nil
		} else {
			defer rabbit.Close()
		}
	}

	r := httpapi.NewRouter(cfg, svc, jobs, rabbit)

	log.Printf("server running at %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
