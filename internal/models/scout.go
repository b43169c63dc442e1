package models

import (
	"errors"
	"time"

	"github.com/sudanscouts/community-backend/internal/locale"
	"gorm.io/datatypes"
)

// Payment statuses.
const (
	PaymentPaid = "paid"
	PaymentDue  = "due"
)

// Payment is one monthly membership-fee sub-record, stored inside the
// scout document's payments array.
type Payment struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	// DatePaid existed in an earlier schema revision. It is preserved
	// whenever present so old records never lose it silently.
	DatePaid string `json:"datePaid,omitempty"`
}

// Scout is a member record. The ID is externally assigned (it is printed on
// the membership card), immutable, and doubles as the document key.
type Scout struct {
	ID          string                           `gorm:"primaryKey;size:64" json:"id"`
	FullName    string                           `gorm:"not null;size:255" json:"fullName"`
	DateOfBirth string                           `gorm:"size:10" json:"dateOfBirth"`
	Address     string                           `gorm:"type:text" json:"address"`
	Group       string                           `gorm:"size:64;index" json:"group"`
	ImageURL    string                           `gorm:"type:text" json:"imageUrl"`
	Payments    datatypes.JSONSlice[Payment]     `gorm:"type:jsonb" json:"payments"`
	CreatedAt   time.Time                        `json:"created_at"`
	UpdatedAt   time.Time                        `json:"updated_at"`
}

var (
	ErrScoutIDRequired    = errors.New("scout ID is required")
	ErrFullNameTooShort   = errors.New("full name must be at least 2 characters")
	ErrAddressTooShort    = errors.New("address must be at least 5 characters")
	ErrDateOfBirthMissing = errors.New("date of birth is required")
	ErrGroupRequired      = errors.New("group is required")
	ErrUnknownGroup       = errors.New("group must be one of the six troops")
	ErrNegativeAmount     = errors.New("payment amount must not be negative")
	ErrPaymentMonthEmpty  = errors.New("payment month is required")
)

// Validate enforces the strict member schema used by the admin forms.
func (s *Scout) Validate() error {
	if err := s.ValidateImported(); err != nil {
		return err
	}
	if len(s.Address) < 5 {
		return ErrAddressTooShort
	}
	if !locale.IsCanonicalGroup(s.Group) {
		return ErrUnknownGroup
	}
	// An empty image URL means the placeholder avatar; anything else must
	// be a real URL.
	if s.ImageURL != "" && !IsValidURL(s.ImageURL) {
		return ErrInvalidImageURL
	}
	return nil
}

// ValidateImported enforces the lenient schema used by CSV import: any
// address passes and an unresolved group string is kept as-is.
func (s *Scout) ValidateImported() error {
	if s.ID == "" {
		return ErrScoutIDRequired
	}
	if len(s.FullName) < 2 {
		return ErrFullNameTooShort
	}
	if s.DateOfBirth == "" {
		return ErrDateOfBirthMissing
	}
	if s.Group == "" {
		return ErrGroupRequired
	}
	for _, p := range s.Payments {
		if p.Month == "" {
			return ErrPaymentMonthEmpty
		}
		if p.Amount < 0 {
			return ErrNegativeAmount
		}
	}
	return nil
}
