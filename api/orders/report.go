package orders

import (
	"errors"
	"net/http"
	"printdoot_server/lib"
	"printdoot_server/structs"
	"strconv"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// AllOrdersReport handles GET /admin/orders/report with an optional
// from=YYYY-MM-DD query parameter
func (orm *OrderRoutesManager) AllOrdersReport(w http.ResponseWriter, r *http.Request) {
	var from *time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			gecho.BadRequest(w,
				gecho.WithMessage("error.report.invalidFromDate"),
				gecho.WithData(map[string]string{"error": err.Error()}),
				gecho.Send(),
			)
			return
		}
		from = &parsed
	}

	doc, err := orm.reportService.OrdersReport(r.Context(), from)
	orm.writeReport(w, doc, err)
}

// RecentOrdersReport handles GET /admin/orders/report/recent?days=N
func (orm *OrderRoutesManager) RecentOrdersReport(w http.ResponseWriter, r *http.Request) {
	days := parseReportDays(r.URL.Query().Get("days"))

	doc, err := orm.reportService.RecentOrdersReport(r.Context(), days)
	orm.writeReport(w, doc, err)
}

// parseReportDays clamps the days window to [1, 365], defaulting to 30.
func parseReportDays(raw string) int {
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return 30
	}
	if days > 365 {
		return 365
	}
	return days
}

// SingleOrderReport handles GET /admin/orders/report/{orderId}
func (orm *OrderRoutesManager) SingleOrderReport(w http.ResponseWriter, r *http.Request) {
	orderCode := chi.URLParam(r, "orderId")

	doc, err := orm.reportService.SingleOrderReport(r.Context(), orderCode)
	orm.writeReport(w, doc, err)
}

func (orm *OrderRoutesManager) writeReport(w http.ResponseWriter, doc *structs.ReportDocument, err error) {
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.report.noOrders"),
				gecho.Send(),
			)
			return
		}

		orm.logger.Error("Failed to build order report", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.report.generationFailed"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(doc),
		gecho.Send(),
	)
}
