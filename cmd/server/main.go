package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Atomicx56/Railway-Resevration/internal/config"
	"github.com/Atomicx56/Railway-Resevration/internal/controllers"
	"github.com/Atomicx56/Railway-Resevration/internal/middleware"
	"github.com/Atomicx56/Railway-Resevration/internal/repositories"
	"github.com/Atomicx56/Railway-Resevration/internal/router"
	"github.com/Atomicx56/Railway-Resevration/internal/services"
	"github.com/Atomicx56/Railway-Resevration/pkg/auth"
	"github.com/Atomicx56/Railway-Resevration/pkg/cache"
	"github.com/Atomicx56/Railway-Resevration/pkg/database"
)

func main() {
	cfg := config.Load()

	// Database.
	db, err := database.Connect(cfg.DB.DSN, database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := database.CreateSchema(db); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}

	// Cache. The service degrades gracefully without Redis, so a cache
	// failure only logs.
	var seatCache cache.Cache
	if cfg.Cache.Enabled {
		redisCfg := database.DefaultRedisConfig()
		redisCfg.Host = cfg.Redis.Host
		redisCfg.Port = cfg.Redis.Port
		redisCfg.Password = cfg.Redis.Password
		redisCfg.DB = cfg.Redis.DB

		redisClient, err := database.ConnectRedis(redisCfg)
		if err != nil {
			log.Printf("redis unavailable, caching disabled: %v", err)
		} else {
			defer redisClient.Close()
			seatCache = cache.NewRedisCache(redisClient, cfg.Cache.Prefix)
		}
	}

	jwtConfig := &auth.JWTConfig{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationTime: cfg.JWT.Expiration,
	}

	// Repositories.
	trainRepo := repositories.NewTrainRepository(db)
	seatRepo := repositories.NewSeatRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Services.
	trainService := services.NewTrainService(database.NewTxRunner(db), trainRepo, seatRepo, seatCache)
	bookingService := services.NewBookingService(trainRepo, seatRepo, seatCache)
	authService := services.NewAuthService(userRepo, jwtConfig)

	// Controllers.
	deps := router.Deps{
		Auth:      controllers.NewAuthController(authService),
		Trains:    controllers.NewTrainController(trainService),
		Bookings:  controllers.NewBookingController(bookingService),
		JWTConfig: jwtConfig,
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
		defer limiter.Stop()
		deps.RateLimiter = limiter
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.New(deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("%s listening on :%s", cfg.App.Name, cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
