package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sudanscouts/community-backend/internal/locale"
	"github.com/sudanscouts/community-backend/internal/models"
)

var (
	displayDateRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	isoDateRe     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// isoToDisplayDate reformats YYYY-MM-DD to DD/MM/YYYY. Values that are not
// ISO dates pass through unchanged.
func isoToDisplayDate(date string) string {
	m := isoDateRe.FindStringSubmatch(strings.TrimSpace(date))
	if m == nil {
		return date
	}
	return m[3] + "/" + m[2] + "/" + m[1]
}

// displayToISODate reformats DD/MM/YYYY back to YYYY-MM-DD. Anything else,
// including an already-ISO date, passes through unchanged.
func displayToISODate(date string) string {
	m := displayDateRe.FindStringSubmatch(strings.TrimSpace(date))
	if m == nil {
		return date
	}
	return m[3] + "-" + m[2] + "-" + m[1]
}

// ParseResult is the outcome of reading an import file.
type ParseResult struct {
	// Candidates are the rows that carried an ID and passed the lenient
	// import schema, in file order.
	Candidates []models.Scout
	// Errors counts rows that carried an ID but failed validation. Rows
	// with a blank ID are skipped silently and counted nowhere.
	Errors int
}

// ParseCSV reads an exported roster file back into candidate member
// records. A file that cannot be parsed at all fails the whole operation;
// a row that fails validation only increments the error count.
func ParseCSV(data []byte) (*ParseResult, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse CSV file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns["id"]; !ok {
		return nil, fmt.Errorf("CSV file is missing the id column")
	}

	cell := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	result := &ParseResult{}
	for _, row := range rows[1:] {
		id := cell(row, "id")
		if id == "" {
			continue
		}

		group, _ := locale.ResolveGroupKey(cell(row, "group"))
		candidate := models.Scout{
			ID:          id,
			FullName:    cell(row, "fullName"),
			DateOfBirth: displayToISODate(cell(row, "dateOfBirth")),
			Address:     cell(row, "address"),
			Group:       group,
			ImageURL:    cell(row, "imageUrl"),
			Payments:    parsePayments(columns, row, cell),
		}

		if err := candidate.ValidateImported(); err != nil {
			result.Errors++
			continue
		}
		result.Candidates = append(result.Candidates, candidate)
	}
	return result, nil
}

// parsePayments scans payment column triples from index 1 until the month
// column stops existing in the header. A present-but-empty month cell skips
// that index without ending the scan.
func parsePayments(columns map[string]int, row []string, cell func([]string, string) string) []models.Payment {
	var payments []models.Payment
	for i := 1; ; i++ {
		monthCol := fmt.Sprintf("payment_month_%d", i)
		if _, ok := columns[monthCol]; !ok {
			break
		}
		month := cell(row, monthCol)
		if month == "" {
			continue
		}

		amount, err := strconv.ParseFloat(cell(row, fmt.Sprintf("payment_amount_%d", i)), 64)
		if err != nil {
			amount = 0
		}

		payments = append(payments, models.Payment{
			Month:  month,
			Amount: amount,
			Status: locale.NormalizeStatus(cell(row, fmt.Sprintf("payment_status_%d", i))),
			// Carried by files from an older schema revision; preserved
			// when present, never required.
			DatePaid: cell(row, fmt.Sprintf("payment_datePaid_%d", i)),
		})
	}
	return payments
}

// Plan splits valid candidates into creates and updates against the member
// IDs that already exist in the store.
type Plan struct {
	Creates []models.Scout
	Updates []models.Scout
}

// Reconcile classifies each candidate by membership in the existing-ID set.
// The set must be fetched once, before reconciling, so every row in one
// import is judged against the same snapshot.
func Reconcile(candidates []models.Scout, existingIDs map[string]bool) Plan {
	var plan Plan
	for _, c := range candidates {
		if existingIDs[c.ID] {
			plan.Updates = append(plan.Updates, c)
		} else {
			plan.Creates = append(plan.Creates, c)
		}
	}
	return plan
}
