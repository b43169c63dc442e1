package services

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sudanscouts/community-backend/internal/authz"
	"github.com/sudanscouts/community-backend/internal/models"
	"gorm.io/gorm"
)

// RoleService resolves an authenticated identity to its authorization role
// by looking up the admins collection.
type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// Resolve returns the role for a user ID. It fails closed: a missing
// record, a nil ID, or a store error all resolve to NoRole so no
// privileged path is ever reachable when the lookup cannot complete.
func (s *RoleService) Resolve(userID uuid.UUID) authz.Role {
	if userID == uuid.Nil {
		return authz.NoRole
	}

	var record models.AdminRole
	err := s.db.First(&record, "user_id = ?", userID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("role lookup failed", "user_id", userID.String(), "error", err)
		}
		return authz.NoRole
	}
	return authz.ParseRole(record.Role)
}

// SeedFromConfig creates one admins record for a bootstrap email if it is
// configured and the user exists. This mirrors assigning roles out-of-band;
// it never overwrites an existing record.
func (s *RoleService) SeedFromConfig(email, role string) {
	if email == "" || authz.ParseRole(role) == authz.NoRole {
		return
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return
	}

	var existing models.AdminRole
	if err := s.db.First(&existing, "user_id = ?", user.ID).Error; err == nil {
		return
	}

	record := models.AdminRole{UserID: user.ID, Role: role}
	if err := s.db.Create(&record).Error; err != nil {
		slog.Error("admin role seed failed", "email", email, "error", err)
		return
	}
	slog.Info("admin role seeded", "email", email, "role", role)
}
