package services

import (
	"errors"
	"fmt"

	"github.com/sudanscouts/community-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrScoutNotFound    = errors.New("member not found")
	ErrDuplicateScoutID = errors.New("a member with this ID already exists")
)

type ScoutService struct {
	db *gorm.DB
}

func NewScoutService(db *gorm.DB) *ScoutService {
	return &ScoutService{db: db}
}

func (s *ScoutService) List() ([]models.Scout, error) {
	var scouts []models.Scout
	if err := s.db.Find(&scouts).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return scouts, nil
}

func (s *ScoutService) Get(id string) (*models.Scout, error) {
	var scout models.Scout
	if err := s.db.First(&scout, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScoutNotFound
		}
		return nil, err
	}
	return &scout, nil
}

// Create inserts a new member. Scout IDs are externally chosen, so a
// collision is a caller mistake and must never overwrite the existing
// record.
func (s *ScoutService) Create(scout *models.Scout) error {
	if err := scout.Validate(); err != nil {
		return err
	}

	var existing models.Scout
	if err := s.db.First(&existing, "id = ?", scout.ID).Error; err == nil {
		return ErrDuplicateScoutID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing member: %w", err)
	}

	if err := s.db.Create(scout).Error; err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (s *ScoutService) Update(id string, scout *models.Scout) error {
	scout.ID = id
	if err := scout.Validate(); err != nil {
		return err
	}

	result := s.db.Model(&models.Scout{}).Where("id = ?", id).Updates(map[string]interface{}{
		"full_name":     scout.FullName,
		"date_of_birth": scout.DateOfBirth,
		"address":       scout.Address,
		"group":         scout.Group,
		"image_url":     scout.ImageURL,
		"payments":      scout.Payments,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrScoutNotFound
	}
	return nil
}

func (s *ScoutService) Delete(id string) error {
	result := s.db.Delete(&models.Scout{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrScoutNotFound
	}
	return nil
}

// SetPaymentStatus toggles one payment sub-record in place.
func (s *ScoutService) SetPaymentStatus(id string, index int, status string) (*models.Scout, error) {
	if status != models.PaymentPaid && status != models.PaymentDue {
		return nil, fmt.Errorf("status must be %q or %q", models.PaymentPaid, models.PaymentDue)
	}

	scout, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(scout.Payments) {
		return nil, fmt.Errorf("payment index %d out of range", index)
	}

	scout.Payments[index].Status = status
	if err := s.db.Model(scout).Update("payments", scout.Payments).Error; err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return scout, nil
}
