package orders

import (
	"errors"
	"net/http"
	"printdoot_server/lib"
	"printdoot_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// GetOrder handles GET /orders/{orderId} by public order code
func (orm *OrderRoutesManager) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderCode := chi.URLParam(r, "orderId")
	if orderCode == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.orderIdRequired"),
			gecho.Send(),
		)
		return
	}

	details, err := orm.orderService.GetOrderByCode(r.Context(), orderCode)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.order.notFound"),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Failed to fetch order",
			gecho.Field("error", err),
			gecho.Field("order_id", orderCode))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.fetchingOrder"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(details),
		gecho.Send(),
	)
}

// UpdateOrder handles PATCH /admin/orders/{orderId} for status and receipt updates
func (orm *OrderRoutesManager) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderCode := chi.URLParam(r, "orderId")

	body, err := lib.ExtractAndValidateBody[structs.OrderUpdate](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.UpdateOrder(r.Context(), orderCode, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.order.notFound"),
				gecho.Send(),
			)
			return
		}
		if lib.IsClientError(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("error.order.invalidStatusTransition"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Failed to update order",
			gecho.Field("error", err),
			gecho.Field("order_id", orderCode))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.order.updateFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.order.updated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
