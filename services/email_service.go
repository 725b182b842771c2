package services

import (
	"context"
	"fmt"
	"printdoot_server/structs"
	"printdoot_server/structs/tables"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailService sends order notifications through Resend. Delivery is
// best-effort; callers fire it after commit and only log failures.
type EmailService struct {
	logger      *gecho.Logger
	cfg         *structs.Config
	client      *resend.Client
	userService *UserService
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config, userService *UserService) *EmailService {
	return &EmailService{
		logger:      logger,
		cfg:         cfg,
		client:      getEmailClient(cfg.Email.ApiKey),
		userService: userService,
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if es.cfg.Email.ApiKey == "" {
		es.logger.Warn("Email API key not configured, skipping email", gecho.Field("subject", subject))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOwnerOrderEmail notifies the store owner that an order was placed
func (es *EmailService) SendOwnerOrderEmail(orderID string, totalPrice int64) error {
	subject := fmt.Sprintf("New Order Placed: %s", orderID)
	body := fmt.Sprintf(`
	<h3>An order has been placed with the following details:</h3>
	<p>Order ID: %s</p>
	<p>Total Price: %d</p>
	<p>Click <a href="%s/order/%s">here</a> to view the order details.</p>
	`, orderID, totalPrice, es.cfg.Server.FrontendURL, orderID)

	return es.SendEmail([]string{es.cfg.Email.OwnerEmail}, subject, body)
}

// SendCustomerOrderEmail sends the buyer an order confirmation with an
// itemized summary.
func (es *EmailService) SendCustomerOrderEmail(
	ctx context.Context,
	orderID string,
	clerkID string,
	totalPrice int64,
	items []*tables.OrderItem,
	products map[string]*tables.Product,
) error {
	if es.cfg.Email.ApiKey == "" {
		es.logger.Warn("Email API key not configured, skipping email", gecho.Field("order_id", orderID))
		return nil
	}

	customerEmail, err := es.userService.GetEmailByClerkID(ctx, clerkID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Order Confirmation: %s", orderID)
	body := fmt.Sprintf(`
	<h3>Thank you for your order!</h3>
	<p>Your order has been successfully placed. Here are the details:</p>
	<p>Order ID: %s</p>
	<p>Total Price: %d</p>
	<p>Click <a href="%s/order/%s">here</a> to track your order.</p>
	<h4>Order Items:</h4>
	<ul>
	`, orderID, totalPrice, es.cfg.Server.FrontendURL, orderID)

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}

		body += fmt.Sprintf(`
		<li>
			<strong>Product Name:</strong> %s <br>
			<strong>Description:</strong> %s <br>
			<strong>Price:</strong> %d <br>
			<strong>Quantity:</strong> %d <br>
			<strong>Customization:</strong> %s: %s <br>
			<strong>Image:</strong> <img src="%s" alt="%s" width="100" height="100"> <br>
		</li>
		`, product.Name, product.Description, item.IndividualPrice, item.Quantity,
			item.UserCustomizationType, item.UserCustomizationValue,
			product.MainImageURL, product.Name)
	}

	body += "</ul>"

	return es.SendEmail([]string{customerEmail}, subject, body)
}
