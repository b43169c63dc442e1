// Package roster turns the member collection into a flat CSV and back.
// The engine is pure: it works on scout slices and an existing-ID set, so
// the round-trip and reconciliation rules are testable without a database.
// RosterService owns the store side.
package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/sudanscouts/community-backend/internal/locale"
	"github.com/sudanscouts/community-backend/internal/models"
)

// utf8BOM keeps right-to-left text intact when the file is opened in
// spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// fixedColumns is the invariant part of the header. Previously exported
// files depend on these exact names; do not rename.
var fixedColumns = []string{"id", "fullName", "dateOfBirth", "address", "group", "imageUrl"}

// ExportCSV renders the member set as a BOM-prefixed UTF-8 CSV. Group names
// and payment statuses are written in the given locale's display strings,
// dates as DD/MM/YYYY, and payment sub-records are flattened positionally
// into payment_month_i/payment_amount_i/payment_status_i triples sized to
// the largest payment list in the set.
func ExportCSV(scouts []models.Scout, loc locale.Locale) ([]byte, error) {
	maxPayments := 0
	for _, s := range scouts {
		if n := len(s.Payments); n > maxPayments {
			maxPayments = n
		}
	}

	var buffer bytes.Buffer
	buffer.Write(utf8BOM)
	writer := csv.NewWriter(&buffer)

	header := append([]string{}, fixedColumns...)
	for i := 1; i <= maxPayments; i++ {
		header = append(header,
			fmt.Sprintf("payment_month_%d", i),
			fmt.Sprintf("payment_amount_%d", i),
			fmt.Sprintf("payment_status_%d", i),
		)
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, s := range scouts {
		record := []string{
			s.ID,
			s.FullName,
			isoToDisplayDate(s.DateOfBirth),
			s.Address,
			locale.GroupDisplayName(s.Group, loc),
			s.ImageURL,
		}
		for i := 0; i < maxPayments; i++ {
			if i < len(s.Payments) {
				p := s.Payments[i]
				record = append(record,
					p.Month,
					strconv.FormatFloat(p.Amount, 'f', 3, 64),
					locale.StatusWord(p.Status, loc),
				)
			} else {
				record = append(record, "", "", "")
			}
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buffer.Bytes(), nil
}

// Filename names the download after the sheet's content.
func Filename() string { return "scouts_roster.csv" }
