package api

import (
	"printdoot_server/api/auth"
	"printdoot_server/api/health"
	"printdoot_server/api/middleware"
	"printdoot_server/api/orders"
	"printdoot_server/api/products"
	"printdoot_server/api/users"
	"printdoot_server/services"
	"printdoot_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	orderRoutes   *orders.OrderRoutesManager
	productRoutes *products.ProductRoutesManager
	userRoutes    *users.UserRoutesManager
	authRoutes    *auth.AuthRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		orderRoutes:   orders.NewOrderRoutesManager(logger, mw, sm.OrderService, sm.ReportService),
		productRoutes: products.NewProductRoutesManager(logger, mw, sm.CatalogService, sm.ReviewService),
		userRoutes:    users.NewUserRoutesManager(logger, sm.UserService),
		authRoutes:    auth.NewAuthRoutesManager(logger, cfg),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.orderRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.userRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
