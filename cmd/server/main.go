package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tlevasseur/blog-api/internal/auth"
	"github.com/tlevasseur/blog-api/internal/config"
	"github.com/tlevasseur/blog-api/internal/database"
	"github.com/tlevasseur/blog-api/internal/handler"
	"github.com/tlevasseur/blog-api/internal/middleware"
	"github.com/tlevasseur/blog-api/internal/queue"
	"github.com/tlevasseur/blog-api/internal/repository"
	"github.com/tlevasseur/blog-api/internal/router"
	"github.com/tlevasseur/blog-api/internal/service"
)

func main() {
	// Load a local .env when present; real deployments set the
	// environment directly and the file is absent.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: with no client, caching and rate limiting are disabled.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	verifier := auth.NewVerifier(cfg.JWTSecret)

	articles := repository.NewArticleRepo(db)
	categories := repository.NewCategoryRepo(db)
	comments := repository.NewCommentRepo(db)
	users := repository.NewUserRepo(db)

	content := handler.NewContentHandler(articles, categories, comments, users, service.NewPublisher())
	authHandler := handler.NewAuthHandler(cfg, users, verifier)

	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterPublic(e, content, cache)
	router.RegisterAuth(e, authHandler)
	router.RegisterContent(e, content, verifier, limit)

	// Background consumer feeding the moderation log. Runs its own
	// reconnect loop; a missing broker never blocks the HTTP server.
	go func() {
		if err := queue.StartModerationConsumer(); err != nil {
			log.Printf("moderation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
