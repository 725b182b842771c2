package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"printdoot_server/database"
	"printdoot_server/lib"
	"printdoot_server/structs"
	"printdoot_server/structs/tables"
	"sort"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-pdf/fpdf"
)

// ReportService builds order reports for a date range. All related entities
// are gathered with one IN-query per entity type, collected over the whole
// result set, so report size never multiplies query count.
type ReportService struct {
	logger       *gecho.Logger
	db           *database.DB
	orderService *OrderService
	userService  *UserService
}

func NewReportService(logger *gecho.Logger, db *database.DB, orderService *OrderService, userService *UserService) *ReportService {
	return &ReportService{
		logger:       logger,
		db:           db,
		orderService: orderService,
		userService:  userService,
	}
}

// BuildReport gathers all orders matching the optional from-date filter and
// assembles one report row group per order with joined buyer and product data.
func (rs *ReportService) BuildReport(ctx context.Context, from *time.Time) ([]structs.ReportRow, error) {
	query := database.Query[tables.Order](rs.db).
		OrderBy("created_at", database.DESC)

	if from != nil {
		query = query.WhereOp("created_at", ">=", *from)
	}

	orders, err := query.All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(orders) == 0 {
		return nil, lib.ErrOrderNotFound
	}

	result := make([]*tables.Order, len(orders))
	for i := range orders {
		result[i] = &orders[i]
	}

	return rs.assembleRows(ctx, result)
}

// BuildSingleOrderReport assembles a report for one order by its public code
func (rs *ReportService) BuildSingleOrderReport(ctx context.Context, orderCode string) ([]structs.ReportRow, error) {
	order, err := database.Query[tables.Order](rs.db).
		Where("order_id", orderCode).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrOrderNotFound
	}

	return rs.assembleRows(ctx, []*tables.Order{order})
}

// assembleRows attaches items and batch-fetches every referenced user,
// user-detail and product row once, then joins them in memory.
func (rs *ReportService) assembleRows(ctx context.Context, orders []*tables.Order) ([]structs.ReportRow, error) {
	if err := rs.orderService.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	clerkIDs := collectClerkIDs(orders)
	productCodes := collectProductCodes(orders)

	users, err := rs.userService.GetUsersByClerkIDs(ctx, clerkIDs)
	if err != nil {
		return nil, err
	}

	details, err := rs.userService.GetDetailsByClerkIDs(ctx, clerkIDs)
	if err != nil {
		return nil, err
	}

	products, err := rs.fetchProducts(ctx, productCodes)
	if err != nil {
		return nil, err
	}

	return AssembleReportRows(orders, users, details, products), nil
}

// fetchProducts loads products for the report directly, bypassing the cache:
// reports want the current catalog row, not a possibly stale cached copy.
func (rs *ReportService) fetchProducts(ctx context.Context, codes []string) (map[string]*tables.Product, error) {
	if len(codes) == 0 {
		return map[string]*tables.Product{}, nil
	}

	args := make([]any, len(codes))
	for i, code := range codes {
		args[i] = code
	}

	products, err := database.Query[tables.Product](rs.db).
		WhereIn("product_id", args).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	result := make(map[string]*tables.Product, len(products))
	for i := range products {
		result[products[i].ProductID] = &products[i]
	}

	return result, nil
}

// OrdersReport renders the full report document for an optional from-date
func (rs *ReportService) OrdersReport(ctx context.Context, from *time.Time) (*structs.ReportDocument, error) {
	rows, err := rs.BuildReport(ctx, from)
	if err != nil {
		return nil, err
	}

	var filename string
	if from != nil {
		filename = fmt.Sprintf("orders_%s_to_%s.pdf", from.Format("20060102"), time.Now().Format("20060102"))
	} else {
		filename = fmt.Sprintf("orders_all_%s.pdf", time.Now().Format("20060102"))
	}

	return rs.renderDocument(rows, filename)
}

// RecentOrdersReport renders the report for the last N days
func (rs *ReportService) RecentOrdersReport(ctx context.Context, days int) (*structs.ReportDocument, error) {
	from := time.Now().AddDate(0, 0, -days)
	return rs.OrdersReport(ctx, &from)
}

// SingleOrderReport renders the report document for one order
func (rs *ReportService) SingleOrderReport(ctx context.Context, orderCode string) (*structs.ReportDocument, error) {
	rows, err := rs.BuildSingleOrderReport(ctx, orderCode)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("order_%s_%s.pdf", orderCode, time.Now().Format("20060102"))
	return rs.renderDocument(rows, filename)
}

func (rs *ReportService) renderDocument(rows []structs.ReportRow, filename string) (*structs.ReportDocument, error) {
	pdfBytes, err := renderReportPDF(rows)
	if err != nil {
		rs.logger.Error("Failed to render report PDF", gecho.Field("error", err))
		return nil, err
	}

	return &structs.ReportDocument{
		Filename:    filename,
		ContentType: "application/pdf",
		PDFData:     base64.StdEncoding.EncodeToString(pdfBytes),
	}, nil
}

// AssembleReportRows joins pre-fetched entity maps into one row group per
// order. Pure function; all I/O happens before this point.
func AssembleReportRows(
	orders []*tables.Order,
	users map[string]*tables.User,
	details map[string]*tables.UserDetails,
	products map[string]*tables.Product,
) []structs.ReportRow {
	rows := make([]structs.ReportRow, 0, len(orders))

	for _, order := range orders {
		row := structs.ReportRow{
			OrderID:    order.OrderID,
			CreatedAt:  order.CreatedAt,
			Status:     string(order.Status),
			TotalPrice: order.TotalPrice,
		}

		if user, ok := users[order.ClerkID]; ok {
			row.BuyerName = user.FirstName + " " + user.LastName
			row.BuyerEmail = user.Email
		}
		if detail, ok := details[order.ClerkID]; ok {
			row.BuyerCity = detail.City
		}

		for _, item := range order.Items {
			line := structs.ReportRowLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.IndividualPrice,
			}
			if product, ok := products[item.ProductID]; ok {
				line.ProductName = product.Name
			}
			if item.UserCustomizationType != "" && item.UserCustomizationType != tables.UserCustomizationNone {
				line.Customization = fmt.Sprintf("%s: %s", item.UserCustomizationType, item.UserCustomizationValue)
			}
			row.Lines = append(row.Lines, line)
		}

		rows = append(rows, row)
	}

	return rows
}

// collectClerkIDs gathers the distinct buyer IDs across a result set
func collectClerkIDs(orders []*tables.Order) []string {
	seen := make(map[string]struct{}, len(orders))
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		if _, ok := seen[order.ClerkID]; ok {
			continue
		}
		seen[order.ClerkID] = struct{}{}
		ids = append(ids, order.ClerkID)
	}
	sort.Strings(ids)
	return ids
}

// collectProductCodes gathers the distinct product codes across all items
func collectProductCodes(orders []*tables.Order) []string {
	seen := map[string]struct{}{}
	codes := []string{}
	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			codes = append(codes, item.ProductID)
		}
	}
	sort.Strings(codes)
	return codes
}

// renderReportPDF renders row groups into a landscape tabular PDF
func renderReportPDF(rows []structs.ReportRow) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Order Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Order ID", "Date", "Status", "Buyer", "Email", "Product", "Qty", "Unit Price", "Customization"}
	widths := []float64{35, 25, 20, 35, 50, 40, 12, 22, 38}

	printHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}
	printHeader()

	for _, row := range rows {
		if len(row.Lines) == 0 {
			cells := []string{row.OrderID, row.CreatedAt.Format("2006-01-02"), row.Status, row.BuyerName, row.BuyerEmail, "-", "-", "-", "-"}
			for i, c := range cells {
				pdf.CellFormat(widths[i], 6, truncate(c, 40), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
			continue
		}

		for i, line := range row.Lines {
			// Order-level columns only on the first line of the group
			orderCols := []string{"", "", "", "", ""}
			if i == 0 {
				orderCols = []string{row.OrderID, row.CreatedAt.Format("2006-01-02"), row.Status, row.BuyerName, row.BuyerEmail}
			}

			cells := append(orderCols,
				line.ProductName,
				fmt.Sprintf("%d", line.Quantity),
				fmt.Sprintf("%d", line.UnitPrice),
				line.Customization,
			)
			for j, c := range cells {
				pdf.CellFormat(widths[j], 6, truncate(c, 40), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
