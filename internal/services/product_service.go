package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sudanscouts/community-backend/internal/models"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) List(category string) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})
	if category == models.CategoryClothing || category == models.CategoryGear {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(product *models.Product) error {
	if product.AIHint == "" {
		product.AIHint = "product"
	}
	if err := product.Validate(); err != nil {
		return err
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := s.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *ProductService) Update(id uuid.UUID, product *models.Product) error {
	product.ID = id
	if product.AIHint == "" {
		product.AIHint = "product"
	}
	if err := product.Validate(); err != nil {
		return err
	}

	result := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name_en":        product.NameEn,
		"name_ar":        product.NameAr,
		"description_en": product.DescriptionEn,
		"description_ar": product.DescriptionAr,
		"price":          product.Price,
		"category":       product.Category,
		"image_url":      product.ImageURL,
		"ai_hint":        product.AIHint,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *ProductService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
