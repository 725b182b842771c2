package orders

import (
	"printdoot_server/api/middleware"
	"printdoot_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger        *gecho.Logger
	mw            *middleware.Middleware
	orderService  *services.OrderService
	reportService *services.ReportService
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	mw *middleware.Middleware,
	orderService *services.OrderService,
	reportService *services.ReportService,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:        logger,
		mw:            mw,
		orderService:  orderService,
		reportService: reportService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/create", orm.CreateOrder)
		r.Get("/user/{clerkId}", orm.ListUserOrders)
		r.Get("/{orderId}", orm.GetOrder)
	})

	r.Route("/admin/orders", func(r chi.Router) {
		r.Use(orm.mw.AdminAuthMiddleware)
		r.Get("/", orm.ListOrders)
		r.Patch("/{orderId}", orm.UpdateOrder)
		r.Get("/report", orm.AllOrdersReport)
		r.Get("/report/recent", orm.RecentOrdersReport)
		r.Get("/report/{orderId}", orm.SingleOrderReport)
	})
}
