package services

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sudanscouts/community-backend/internal/cart"
	"github.com/sudanscouts/community-backend/internal/dto"
	"github.com/sudanscouts/community-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCartEmpty          = errors.New("the cart is empty")
	ErrInvalidCustomer    = errors.New("invalid customer data provided")
	ErrUnknownCartProduct = errors.New("cart references a product that no longer exists")
	ErrMessagingDisabled  = errors.New("ordering is not configured")
)

// CheckoutService turns a client cart into a prefilled messaging deep link.
// Orders and contact messages are delivered over WhatsApp rather than a
// payment backend; prices always come from the products table, never from
// the client.
type CheckoutService struct {
	db     *gorm.DB
	number string
}

func NewCheckoutService(db *gorm.DB, whatsAppNumber string) *CheckoutService {
	return &CheckoutService{db: db, number: whatsAppNumber}
}

func validateCustomer(c *dto.CustomerDetails) error {
	if len(c.FirstName) < 2 || len(c.LastName) < 2 {
		return ErrInvalidCustomer
	}
	if len(c.Address) < 10 {
		return ErrInvalidCustomer
	}
	if len(c.Phone) < 10 {
		return ErrInvalidCustomer
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return ErrInvalidCustomer
	}
	return nil
}

// PlaceOrder validates the checkout form, reprices the cart against the
// store, and builds the order deep link.
func (s *CheckoutService) PlaceOrder(req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if err := validateCustomer(&req.Customer); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, ErrCartEmpty
	}
	if s.number == "" {
		return nil, ErrMessagingDisabled
	}

	// Rebuild the cart server-side: dedupe lines and take prices and
	// names from the store, not the client payload.
	var priced cart.Cart
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("quantity for %q must be at least 1", item.ProductID)
		}

		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, ErrUnknownCartProduct
		}
		var product models.Product
		if err := s.db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownCartProduct
			}
			return nil, fmt.Errorf("failed to load product: %w", err)
		}

		for i := 0; i < item.Quantity; i++ {
			priced.Add(product.ID.String(), product.Name("en"), product.Price, item.Size)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New order from %s %s\n", req.Customer.FirstName, req.Customer.LastName)
	fmt.Fprintf(&b, "Phone: %s\nEmail: %s\nAddress: %s\n", req.Customer.Phone, req.Customer.Email, req.Customer.Address)
	if req.Customer.ScoutID != "" {
		fmt.Fprintf(&b, "Scout ID: %s\n", req.Customer.ScoutID)
	}
	b.WriteString("\nItems:\n")
	for _, line := range priced.Items() {
		size := ""
		if line.Size != "" {
			size = " (" + line.Size + ")"
		}
		fmt.Fprintf(&b, "- %dx %s%s = %.3f\n", line.Quantity, line.Name, size, line.Price*float64(line.Quantity))
	}
	fmt.Fprintf(&b, "\nTotal: %.3f", priced.TotalPrice())

	return &dto.CheckoutResponse{
		Message:    "Order placed successfully!",
		TotalPrice: priced.TotalPrice(),
		OrderLink:  s.deepLink(b.String()),
	}, nil
}

// ContactLink builds the contact-form deep link. Nothing is stored; the
// message goes out over the chat application.
func (s *CheckoutService) ContactLink(req *dto.ContactRequest) (*dto.ContactResponse, error) {
	if req.Name == "" || req.Subject == "" || req.Message == "" {
		return nil, errors.New("invalid data provided")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, errors.New("invalid data provided")
	}
	if s.number == "" {
		return nil, ErrMessagingDisabled
	}

	text := fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s", req.Name, req.Email, req.Subject, req.Message)
	return &dto.ContactResponse{
		Message:     "Message sent successfully!",
		ContactLink: s.deepLink(text),
	}, nil
}

func (s *CheckoutService) deepLink(text string) string {
	return "https://wa.me/" + s.number + "?text=" + url.QueryEscape(text)
}
