package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"resortly/handlers"
	"resortly/middleware"
)

// RegisterResourceRoutes registers the public catalog and the staff-only
// resource administration endpoints.
func RegisterResourceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/resources")
	{
		api.GET("/chalets", hb.Resources.ListChalets)
		api.GET("/chalets/:id", hb.Resources.GetChalet)
		api.GET("/sessions", hb.Resources.ListSessions)
		api.GET("/sessions/:id", hb.Resources.GetSession)
	}

	admin := r.Group("/api/admin/resources")
	{
		admin.Use(middleware.StaffAuthMiddleware())
		admin.POST("/chalets", hb.Resources.CreateChalet)
		admin.PUT("/chalets/:id", hb.Resources.UpdateChalet)
		admin.POST("/sessions", hb.Resources.CreateSession)
		admin.PUT("/sessions/:id", hb.Resources.UpdateSession)
	}
}

// RegisterPriceRuleRoutes registers staff-only price rule management.
func RegisterPriceRuleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin/price-rules")
	{
		admin.Use(middleware.StaffAuthMiddleware())
		admin.POST("", hb.PriceRule.CreateRule)
		admin.GET("", hb.PriceRule.ListRules)
		admin.PUT("/:id", hb.PriceRule.UpdateRule)
		admin.DELETE("/:id", hb.PriceRule.DeactivateRule)
	}
}

// RegisterMenuRoutes registers the public menu and staff menu management.
func RegisterMenuRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/menu", hb.Menu.ListMenu)

	admin := r.Group("/api/admin/menu")
	{
		admin.Use(middleware.StaffAuthMiddleware())
		admin.POST("", hb.Menu.CreateMenuItem)
		admin.PUT("/:id", hb.Menu.UpdateMenuItem)
		admin.DELETE("/:id", hb.Menu.DeleteMenuItem)
	}
}

// RegisterOrderRoutes registers guest ordering and the staff kitchen board.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.POST("", hb.Orders.PlaceOrder)
		api.GET("", hb.Orders.ListGuestOrders)
		api.GET("/:id", hb.Orders.GetOrder)
	}

	admin := r.Group("/api/admin/orders")
	{
		admin.Use(middleware.StaffAuthMiddleware())
		admin.GET("", hb.Orders.OrderBoard)
		admin.POST("/:id/status", hb.Orders.AdvanceOrder)
	}
}

// RegisterGuestRoutes registers guest profile endpoints.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guests")
	{
		api.POST("", hb.Guests.CreateGuest)
		api.GET("/:id", hb.Guests.GetGuest)
		api.PUT("/:id", hb.Guests.UpdateGuest)
		api.PUT("/:id/prefs", hb.Guests.UpdatePrefs)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Resortly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterResourceRoutes(r, hb)
	RegisterPriceRuleRoutes(r, hb)
	RegisterMenuRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterGuestRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
