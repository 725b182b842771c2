package orders

import (
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// parsePagination reads page/page_size query params with sane bounds
func parsePagination(r *http.Request) (limit, offset int) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return pageSize, (page - 1) * pageSize
}

func parseSortDir(r *http.Request) string {
	if r.URL.Query().Get("sort") == "asc" {
		return "asc"
	}
	return "desc"
}

// ListUserOrders handles GET /orders/user/{clerkId}
func (orm *OrderRoutesManager) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	clerkID := chi.URLParam(r, "clerkId")
	if clerkID == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.clerkIdRequired"),
			gecho.Send(),
		)
		return
	}

	limit, offset := parsePagination(r)

	orders, err := orm.orderService.GetOrdersByClerkID(r.Context(), clerkID, limit, offset, parseSortDir(r))
	if err != nil {
		orm.logger.Error("Failed to fetch user orders",
			gecho.Field("error", err),
			gecho.Field("clerk_id", clerkID))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.fetchingOrders"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
			"count":  len(orders),
		}),
		gecho.Send(),
	)
}

// ListOrders handles GET /admin/orders with pagination
func (orm *OrderRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	orders, total, err := orm.orderService.GetAllOrders(r.Context(), limit, offset, parseSortDir(r))
	if err != nil {
		orm.logger.Error("Failed to fetch orders", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.fetchingOrders"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	totalPages := (total + limit - 1) / limit

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
			"pagination": map[string]any{
				"page_size":   limit,
				"total":       total,
				"total_pages": totalPages,
			},
		}),
		gecho.Send(),
	)
}
