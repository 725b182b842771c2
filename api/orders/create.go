package orders

import (
	"errors"
	"net/http"
	"printdoot_server/api/health"
	"printdoot_server/lib"
	"printdoot_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateOrder handles POST /orders/create: the full checkout flow
func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.PlaceOrder(r.Context(), body)
	if err != nil {
		if lib.IsClientError(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.order.invalidLineItems"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.order.referencedEntityNotFound"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Failed to place order",
			gecho.Field("error", err),
			gecho.Field("clerk_id", body.ClerkID))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.creationFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	health.OrdersPlaced.Inc()

	gecho.Success(w,
		gecho.WithMessage("success.order.created"),
		gecho.WithData(map[string]any{
			"order_id":    order.OrderID,
			"status":      order.Status,
			"total_price": order.TotalPrice,
			"created_at":  order.CreatedAt,
		}),
		gecho.Send(),
	)
}
