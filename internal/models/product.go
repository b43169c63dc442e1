package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Product categories.
const (
	CategoryClothing = "clothing"
	CategoryGear     = "gear"
)

// Product is one storefront item with bilingual copy.
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NameEn        string    `gorm:"not null;size:255" json:"name_en"`
	NameAr        string    `gorm:"not null;size:255" json:"name_ar"`
	DescriptionEn string    `gorm:"type:text" json:"description_en"`
	DescriptionAr string    `gorm:"type:text" json:"description_ar"`
	Price         float64   `gorm:"not null" json:"price"`
	Category      string    `gorm:"size:20;not null" json:"category"`
	ImageURL      string    `gorm:"type:text" json:"imageUrl"`
	AIHint        string    `gorm:"size:255;default:'product'" json:"aiHint"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var (
	ErrProductNameRequired = errors.New("product name is required in both languages")
	ErrProductDescRequired = errors.New("product description is required in both languages")
	ErrPriceNotPositive    = errors.New("price must be greater than zero")
	ErrInvalidCategory     = errors.New("category must be clothing or gear")
	ErrInvalidImageURL     = errors.New("a valid image URL is required")
)

func (p *Product) Validate() error {
	if p.NameEn == "" || p.NameAr == "" {
		return ErrProductNameRequired
	}
	if p.DescriptionEn == "" || p.DescriptionAr == "" {
		return ErrProductDescRequired
	}
	if p.Price <= 0 {
		return ErrPriceNotPositive
	}
	if p.Category != CategoryClothing && p.Category != CategoryGear {
		return ErrInvalidCategory
	}
	if !IsValidURL(p.ImageURL) {
		return ErrInvalidImageURL
	}
	return nil
}

// Name returns the product name for a locale tag, falling back to the
// other language when a translation is missing (legacy records carried a
// single name field).
func (p *Product) Name(lang string) string {
	if lang == "ar" {
		if p.NameAr != "" {
			return p.NameAr
		}
		return p.NameEn
	}
	if p.NameEn != "" {
		return p.NameEn
	}
	return p.NameAr
}
