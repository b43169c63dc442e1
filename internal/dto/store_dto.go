package dto

import "github.com/sudanscouts/community-backend/internal/cart"

// CustomerDetails is the checkout form. Phone and address are long enough
// to actually reach someone; the scout ID is optional for member discounts.
type CustomerDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	ScoutID   string `json:"scoutId,omitempty"`
}

type CheckoutRequest struct {
	Customer CustomerDetails `json:"customerDetails"`
	Items    []cart.Item     `json:"cartItems"`
}

// CheckoutResponse carries the prefilled messaging deep link the client
// opens to place the order. No payment happens server-side.
type CheckoutResponse struct {
	Message    string  `json:"message"`
	TotalPrice float64 `json:"totalPrice"`
	OrderLink  string  `json:"orderLink"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Message     string `json:"message"`
	ContactLink string `json:"contactLink"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
