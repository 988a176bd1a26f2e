package routes

import (
	"time"

	"casino_webapp/internal/http/handlers"
	"casino_webapp/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Register вешает все маршруты приложения
func Register(r *gin.Engine, h *handlers.Handler) {
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// лента результатов (токен в query)
	r.GET("/ws/feed", h.WS)

	auth := r.Group("/api/auth")
	auth.Use(middleware.RateLimit(10, time.Minute))
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	api := r.Group("/api")
	api.Use(middleware.Auth(), middleware.RateLimit(120, time.Minute))
	{
		api.GET("/profile", h.Profile)
		api.GET("/history", h.GameHistory)
		api.GET("/transactions", h.Transactions)
		api.GET("/education", h.Education)
		api.POST("/coins/request", h.RequestCoins)
		api.GET("/coins/my-requests", h.MyCoinRequests)

		blackjack := api.Group("/blackjack")
		{
			blackjack.POST("/deal", h.BlackjackDeal)
			blackjack.POST("/action", h.BlackjackAction)
			blackjack.GET("/state", h.BlackjackState)
		}

		poker := api.Group("/poker")
		{
			poker.POST("/deal", h.PokerDeal)
			poker.POST("/draw", h.PokerDraw)
			poker.GET("/state", h.PokerState)
			poker.GET("/payouts", h.PokerPayoutTable)
		}

		api.POST("/roulette/spin", h.RouletteSpin)
		api.POST("/dice/roll", h.DiceRoll)

		mines := api.Group("/mines")
		{
			mines.POST("/create", h.MinesCreate)
			mines.POST("/reveal", h.MinesReveal)
			mines.POST("/cashout", h.MinesCashout)
			mines.GET("/state", h.MinesState)
			mines.GET("/info", h.MinesInfo)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/stats", h.AdminStats)
			admin.GET("/requests", h.AdminPendingRequests)
			admin.POST("/requests/:id/approve", h.AdminApproveRequest)
			admin.POST("/requests/:id/deny", h.AdminDenyRequest)
			admin.GET("/audit", h.AdminAuditLogs)
		}
	}
}
