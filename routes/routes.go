package routes

import (
	"github.com/expensex/expensex-api/config"
	"github.com/expensex/expensex-api/handlers"
	"github.com/expensex/expensex-api/middleware"
	"github.com/expensex/expensex-api/services"
	"github.com/expensex/expensex-api/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies are the wired components the router serves.
type Dependencies struct {
	Config      *config.Config
	Directory   *services.DirectoryService
	Store       *store.Store
	WS          *handlers.WSHandler
	RateLimiter *middleware.RateLimiter
}

// NewRouter assembles the engine with global middleware and every route group.
func NewRouter(d Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	if d.Config != nil && len(d.Config.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     d.Config.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           86400,
		}))
	}

	if d.RateLimiter != nil {
		router.Use(d.RateLimiter.Handler())
	}

	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	{
		adminOnly := d.Config != nil && d.Config.DirectoryAdminOnly
		SetupUserRoutes(api, d.Directory, d.Store, adminOnly)
		SetupSessionRoutes(api, d.Store)
		SetupLedgerRoutes(api, d.Store, d.WS)
	}

	return router
}

// SetupUserRoutes registers the user directory. When adminOnly is set the
// routes require an admin session, like the Users page.
func SetupUserRoutes(rg *gin.RouterGroup, directory *services.DirectoryService, s *store.Store, adminOnly bool) {
	h := handlers.NewUserHandler(directory)

	users := rg.Group("/users")
	if adminOnly {
		users.Use(middleware.RequireSession(s), middleware.RequireAdmin())
	}

	users.GET("", h.ListUsers)
	users.POST("", h.CreateUser)
	users.PUT("", h.UpdateUser)
	users.DELETE("", h.DeleteUser)
}

// SetupSessionRoutes registers the public login/signup/logout routes.
func SetupSessionRoutes(rg *gin.RouterGroup, s *store.Store) {
	h := handlers.NewSessionHandler(s)

	rg.GET("/session", h.GetSession)
	rg.POST("/session/login", h.Login)
	rg.POST("/session/signup", h.Signup)
	rg.POST("/session/logout", h.Logout)
}

// SetupLedgerRoutes registers the ledger, gated on an active session.
func SetupLedgerRoutes(rg *gin.RouterGroup, s *store.Store, ws *handlers.WSHandler) {
	h := handlers.NewLedgerHandler(s)

	ledger := rg.Group("/ledger")
	ledger.Use(middleware.RequireSession(s))
	{
		ledger.GET("/categories", h.GetCategories)
		ledger.POST("/categories", h.CreateCategory)

		ledger.GET("/projects", h.GetProjects)
		ledger.POST("/projects", h.CreateProject)

		ledger.GET("/expenses", h.GetExpenses)
		ledger.POST("/expenses", h.CreateExpense)
		ledger.DELETE("/expenses/:id", h.DeleteExpense)

		ledger.GET("/incomes", h.GetIncomes)
		ledger.POST("/incomes", h.CreateIncome)

		ledger.GET("/summary", h.GetSummary)
	}

	if ws != nil {
		rg.GET("/ws/ledger", middleware.RequireSession(s), ws.HandleLedgerWS)
	}
}
