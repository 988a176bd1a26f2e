package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casino_webapp/internal/bot"
	"casino_webapp/internal/config"
	"casino_webapp/internal/db"
	"casino_webapp/internal/http/handlers"
	"casino_webapp/internal/http/middleware"
	"casino_webapp/internal/http/routes"
	"casino_webapp/internal/logger"
	"casino_webapp/internal/service"
	"casino_webapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Version устанавливается при сборке
var Version = "dev"

func main() {
	cfg := config.Load()

	logger.Init(cfg.LogLevel, cfg.LogJSON)
	log := logger.Get()

	service.InitJWT()

	dbPool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db connect failed", "error", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()
	middleware.InitRedisRateLimiter(rdb)

	r := gin.Default()

	// CORS для прода и связи фронта с бэкендом (разные домены)
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	hub := ws.NewHub()
	rounds := service.NewRoundStore(rdb)
	games := service.NewGameService(cfg.MinBet, cfg.MaxBet)
	h := handlers.NewHandler(dbPool, rounds, games, hub)

	// Запуск админ бота ПЕРЕД HTTP сервером чтобы уведомления работали сразу
	var adminBot *bot.AdminBot
	if cfg.AdminBotEnabled && len(cfg.AdminTelegramIDs) > 0 {
		adminBot, err = bot.NewAdminBot(cfg.BotToken, h.Admin, cfg.AdminTelegramIDs)
		if err != nil {
			log.Error("failed to start admin bot", "error", err)
		} else {
			go adminBot.Start()
			h.Notifier = adminBot
			log.Info("admin bot started", "admin_ids", cfg.AdminTelegramIDs)
		}
	}

	routes.Register(r, h)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		log.Info("server started", "port", cfg.AppPort, "version", Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	if adminBot != nil {
		adminBot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
