package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"comma-backend/internal/domain/employee"
	"comma-backend/internal/handler/api"
	"comma-backend/internal/handler/middleware"
	"comma-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Booking    *api.BookingHandler
	SharedArea *api.SharedAreaHandler
	Customer   *api.CustomerHandler
	Room       *api.RoomHandler
	Branch     *api.BranchHandler
	Kitchen    *api.KitchenHandler
	Employee   *api.EmployeeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		requireManager := authMiddleware.RequireRoleAtLeast(employee.RoleManager)
		requireAdmin := authMiddleware.RequireRoleAtLeast(employee.RoleAdmin)

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/active", Handler: h.Booking.ActiveCustomers},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/checkin", Handler: h.Booking.CheckIn},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: h.Booking.CheckOut},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			})
		}

		sharedArea := apiGroup.Group("/shared-area")
		sharedArea.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sharedArea, []route{
				{Method: http.MethodGet, Path: "", Handler: h.SharedArea.List},
				{Method: http.MethodGet, Path: "/active", Handler: h.SharedArea.ActiveCustomers},
				{Method: http.MethodGet, Path: "/:id", Handler: h.SharedArea.Get},
				{Method: http.MethodPost, Path: "/checkin", Handler: h.SharedArea.CheckIn},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: h.SharedArea.CheckOut},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.SharedArea.Cancel},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
				{Method: http.MethodPost, Path: "/import", Handler: h.Customer.ImportExcel},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Customer.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete, Mw: []gin.HandlerFunc{requireManager}},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: []gin.HandlerFunc{requireManager}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.Update, Mw: []gin.HandlerFunc{requireManager}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete, Mw: []gin.HandlerFunc{requireManager}},
			})
		}

		branches := apiGroup.Group("/branches")
		branches.Use(authMiddleware.RequireAuth())
		{
			addRoutes(branches, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Branch.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Branch.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Branch.Create, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Branch.Update, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Branch.Delete, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		kitchen := apiGroup.Group("/kitchen")
		kitchen.Use(authMiddleware.RequireAuth())
		{
			addRoutes(kitchen, []route{
				{Method: http.MethodGet, Path: "/items", Handler: h.Kitchen.ListItems},
				{Method: http.MethodPost, Path: "/items", Handler: h.Kitchen.CreateItem, Mw: []gin.HandlerFunc{requireManager}},
				{Method: http.MethodPost, Path: "/items/import", Handler: h.Kitchen.ImportItems, Mw: []gin.HandlerFunc{requireManager}},
				{Method: http.MethodPut, Path: "/items/:id", Handler: h.Kitchen.UpdateItem, Mw: []gin.HandlerFunc{requireManager}},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Kitchen.DeleteItem, Mw: []gin.HandlerFunc{requireManager}},
				{Method: http.MethodGet, Path: "/sales", Handler: h.Kitchen.ListSales},
				{Method: http.MethodGet, Path: "/sales/:id", Handler: h.Kitchen.GetSale},
				{Method: http.MethodPost, Path: "/sales", Handler: h.Kitchen.CreateSale},
			})
		}

		employees := apiGroup.Group("/employees")
		employees.Use(authMiddleware.RequireAuth())
		employees.Use(requireAdmin)
		{
			addRoutes(employees, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Employee.List},
				{Method: http.MethodGet, Path: "/count", Handler: h.Employee.Count},
				{Method: http.MethodPost, Path: "", Handler: h.Employee.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Employee.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Employee.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
