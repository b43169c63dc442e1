package services

import (
	"fmt"

	"github.com/sudanscouts/community-backend/internal/dto"
	"github.com/sudanscouts/community-backend/internal/locale"
	"github.com/sudanscouts/community-backend/internal/models"
	"github.com/sudanscouts/community-backend/internal/roster"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RosterService drives the import/export engine against the store.
type RosterService struct {
	db *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{db: db}
}

// Export renders the entire member collection as a downloadable CSV in the
// given locale.
func (s *RosterService) Export(loc locale.Locale) ([]byte, error) {
	var scouts []models.Scout
	if err := s.db.Find(&scouts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	return roster.ExportCSV(scouts, loc)
}

// Import parses an uploaded roster file, reconciles it against the
// existing member IDs (fetched once, before any write), and upserts every
// valid candidate in a single transaction. Re-importing the same file is
// idempotent.
func (s *RosterService) Import(data []byte) (*dto.ImportReport, error) {
	parsed, err := roster.ParseCSV(data)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := s.db.Model(&models.Scout{}).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch existing member IDs: %w", err)
	}
	existing := make(map[string]bool, len(ids))
	for _, id := range ids {
		existing[id] = true
	}

	plan := roster.Reconcile(parsed.Candidates, existing)

	// One transaction so the batch commits or rolls back as a whole.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		upsert := append(append([]models.Scout{}, plan.Creates...), plan.Updates...)
		if len(upsert) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).CreateInBatches(upsert, 100).Error
	})
	if err != nil {
		return nil, fmt.Errorf("import batch failed: %w", err)
	}

	return &dto.ImportReport{
		Created: len(plan.Creates),
		Updated: len(plan.Updates),
		Errors:  parsed.Errors,
	}, nil
}
