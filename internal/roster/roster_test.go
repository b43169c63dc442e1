package roster

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/sudanscouts/community-backend/internal/locale"
	"github.com/sudanscouts/community-backend/internal/models"
)

func sampleScouts() []models.Scout {
	return []models.Scout{
		{
			ID:          "101",
			FullName:    "Ali Hassan",
			DateOfBirth: "2010-04-15",
			Address:     "12 Nile Street, Khartoum",
			Group:       locale.TroopBoyScouts,
			ImageURL:    "https://example.com/ali.png",
			Payments: []models.Payment{
				{Month: "January", Amount: 5, Status: "paid"},
				{Month: "February", Amount: 5.5, Status: "due"},
			},
		},
		{
			ID:          "102",
			FullName:    "Maha Osman",
			DateOfBirth: "2011-09-01",
			Address:     "3 Omdurman Road",
			Group:       locale.TroopGirlGuides,
		},
	}
}

func TestExportCSVHeaderAndRows(t *testing.T) {
	data, err := ExportCSV(sampleScouts(), locale.English)
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("export is missing the UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimSpace(string(bytes.TrimPrefix(data, utf8BOM))), "\n")
	if len(lines) != 3 {
		t.Fatalf("export has %d lines, want 3 (header + 2 rows)", len(lines))
	}

	wantHeader := "id,fullName,dateOfBirth,address,group,imageUrl," +
		"payment_month_1,payment_amount_1,payment_status_1," +
		"payment_month_2,payment_amount_2,payment_status_2"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	// Dates are re-formatted, groups localized, amounts written with
	// 3-decimal currency precision.
	first := lines[1]
	for _, want := range []string{"15/04/2010", "Boy Scouts", "5.000", "5.500", "paid", "due"} {
		if !strings.Contains(first, want) {
			t.Errorf("first row %q does not contain %q", first, want)
		}
	}

	// The 0-payment member's payment columns are blank.
	second := strings.Split(lines[2], ",")
	if len(second) != 12 {
		t.Fatalf("second row has %d columns, want 12", len(second))
	}
	for _, cell := range second[6:] {
		if cell != "" {
			t.Errorf("expected blank payment cell, got %q", cell)
		}
	}
}

func TestExportCSVLocalizedArabic(t *testing.T) {
	data, err := ExportCSV(sampleScouts(), locale.Arabic)
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"الكشافة", "المرشدات", "مدفوع", "مستحق"} {
		if !strings.Contains(out, want) {
			t.Errorf("arabic export does not contain %q", want)
		}
	}
}

func TestDateReformatting(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		toISO   string
		display string
	}{
		{name: "iso to display and back", in: "2010-04-15", toISO: "2010-04-15", display: "15/04/2010"},
		{name: "already iso passes through import", in: "2010-04-15", toISO: "2010-04-15"},
		{name: "free text passes through", in: "spring 2010", toISO: "spring 2010", display: "spring 2010"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayToISODate(tt.in); got != tt.toISO {
				t.Errorf("displayToISODate(%q) = %q, want %q", tt.in, got, tt.toISO)
			}
			if tt.display != "" {
				if got := isoToDisplayDate(tt.in); got != tt.display {
					t.Errorf("isoToDisplayDate(%q) = %q, want %q", tt.in, got, tt.display)
				}
			}
		})
	}
	if got := displayToISODate("15/04/2010"); got != "2010-04-15" {
		t.Errorf("displayToISODate(15/04/2010) = %q, want 2010-04-15", got)
	}
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name         string
		csv          string
		wantErr      bool
		validateFunc func(t *testing.T, result *ParseResult)
	}{
		{
			name: "basic rows with payments",
			csv: "id,fullName,dateOfBirth,address,group,imageUrl,payment_month_1,payment_amount_1,payment_status_1\n" +
				"101,Ali Hassan,15/04/2010,12 Nile Street,troopBoyScouts,,January,5.000,paid\n",
			validateFunc: func(t *testing.T, result *ParseResult) {
				if len(result.Candidates) != 1 || result.Errors != 0 {
					t.Fatalf("got %d candidates %d errors, want 1/0", len(result.Candidates), result.Errors)
				}
				s := result.Candidates[0]
				if s.DateOfBirth != "2010-04-15" {
					t.Errorf("dateOfBirth = %q, want 2010-04-15", s.DateOfBirth)
				}
				if len(s.Payments) != 1 || s.Payments[0].Amount != 5 || s.Payments[0].Status != "paid" {
					t.Errorf("payments = %+v", s.Payments)
				}
			},
		},
		{
			name: "blank id rows are skipped silently",
			csv: "id,fullName,dateOfBirth,address,group,imageUrl\n" +
				",Ghost Row,01/01/2010,nowhere,troopBrownies,\n" +
				"103,Sara Ahmed,01/01/2010,somewhere,troopBrownies,\n",
			validateFunc: func(t *testing.T, result *ParseResult) {
				if len(result.Candidates) != 1 {
					t.Fatalf("got %d candidates, want 1", len(result.Candidates))
				}
				if result.Errors != 0 {
					t.Errorf("blank id counted as error: %d", result.Errors)
				}
			},
		},
		{
			name: "localized group names resolve to canonical keys",
			csv: "id,fullName,dateOfBirth,address,group,imageUrl\n" +
				"104,Omar Khalid,01/01/2010,addr,الكشافة,\n" +
				"105,Lina Tarig,01/01/2010,addr,girl guides,\n",
			validateFunc: func(t *testing.T, result *ParseResult) {
				if result.Candidates[0].Group != locale.TroopBoyScouts {
					t.Errorf("arabic group resolved to %q", result.Candidates[0].Group)
				}
				if result.Candidates[1].Group != locale.TroopGirlGuides {
					t.Errorf("case-insensitive group resolved to %q", result.Candidates[1].Group)
				}
			},
		},
		{
			name: "unmatched group is kept raw, not rejected",
			csv: "id,fullName,dateOfBirth,address,group,imageUrl\n" +
				"106,Tariq Musa,01/01/2010,addr,Sea Scouts,\n",
			validateFunc: func(t *testing.T, result *ParseResult) {
				if result.Errors != 0 {
					t.Fatalf("unknown group treated as error")
				}
				if got := result.Candidates[0].Group; got != "Sea Scouts" {
					t.Errorf("group = %q, want raw value preserved", got)
				}
			},
		},
		{
			name: "bad amount defaults to zero, bad status to due",
			csv: "id,fullName,dateOfBirth,address,group,imageUrl,payment_month_1,payment_amount_1,payment_status_1\n" +
				"107,Huda Salim,01/01/2010,addr,troopCubScouts,,March,not-a-number,maybe\n",
			validateFunc: func(t *testing.T, result *ParseResult) {
				p := result.Candidates[0].Payments[0]
				if p.Amount != 0 {
					t.Errorf("amount = %v, want 0", p.Amount)
				}
				if p.Status != "due" {
					t.Errorf("status = %q, want due", p.Status)
				}
			},
		},
		{
			name: "empty month cell skips the slot without ending the scan",
			csv: "id,fullName,dateOfBirth,address,group,imageUrl," +
				"payment_month_1,payment_amount_1,payment_status_1," +
				"payment_month_2,payment_amount_2,payment_status_2\n" +
				"108,Nour Adam,01/01/2010,addr,troopAdvanced,,,5,paid,April,7,due\n",
			validateFunc: func(t *testing.T, result *ParseResult) {
				payments := result.Candidates[0].Payments
				if len(payments) != 1 || payments[0].Month != "April" {
					t.Errorf("payments = %+v, want only April", payments)
				}
			},
		},
		{
			name: "legacy datePaid column is preserved",
			csv: "id,fullName,dateOfBirth,address,group,imageUrl," +
				"payment_month_1,payment_amount_1,payment_status_1,payment_datePaid_1\n" +
				"109,Samir Idris,01/01/2010,addr,troopAdvanced,,May,5,paid,2024-05-02\n",
			validateFunc: func(t *testing.T, result *ParseResult) {
				if got := result.Candidates[0].Payments[0].DatePaid; got != "2024-05-02" {
					t.Errorf("datePaid = %q, want 2024-05-02", got)
				}
			},
		},
		{
			name: "row failing validation is counted, not fatal",
			csv: "id,fullName,dateOfBirth,address,group,imageUrl\n" +
				"110,X,01/01/2010,addr,troopBrownies,\n" +
				"111,Valid Name,01/01/2010,addr,troopBrownies,\n",
			validateFunc: func(t *testing.T, result *ParseResult) {
				if result.Errors != 1 {
					t.Errorf("errors = %d, want 1", result.Errors)
				}
				if len(result.Candidates) != 1 {
					t.Errorf("candidates = %d, want 1", len(result.Candidates))
				}
			},
		},
		{
			name:    "missing id column fails the whole file",
			csv:     "fullName,group\nAli,troopBoyScouts\n",
			wantErr: true,
		},
		{
			name:    "unparseable file fails the whole operation",
			csv:     "id,fullName\n\"unterminated,row\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCSV([]byte(tt.csv))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCSV() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, result)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	// The two-row scenario: 101 is new, 102 already exists.
	candidates := []models.Scout{
		{ID: "101", FullName: "Ali", Group: locale.TroopBoyScouts},
		{ID: "102", FullName: "Maha", Group: locale.TroopGirlGuides},
	}
	existing := map[string]bool{"102": true}

	plan := Reconcile(candidates, existing)
	if len(plan.Creates) != 1 || plan.Creates[0].ID != "101" {
		t.Errorf("creates = %+v, want [101]", plan.Creates)
	}
	if len(plan.Updates) != 1 || plan.Updates[0].ID != "102" {
		t.Errorf("updates = %+v, want [102]", plan.Updates)
	}
}

func TestRoundTripIdempotence(t *testing.T) {
	for _, loc := range []locale.Locale{locale.English, locale.Arabic} {
		original := sampleScouts()

		exported, err := ExportCSV(original, loc)
		if err != nil {
			t.Fatalf("ExportCSV() error = %v", err)
		}
		parsed, err := ParseCSV(exported)
		if err != nil {
			t.Fatalf("ParseCSV() error = %v", err)
		}
		if parsed.Errors != 0 {
			t.Fatalf("round trip produced %d row errors", parsed.Errors)
		}

		reExported, err := ExportCSV(parsed.Candidates, loc)
		if err != nil {
			t.Fatalf("re-export error = %v", err)
		}
		if !bytes.Equal(exported, reExported) {
			t.Errorf("locale %s: export(import(export(M))) != export(M)", loc)
		}

		// The member set itself survives unchanged.
		if len(parsed.Candidates) != len(original) {
			t.Fatalf("round trip changed member count")
		}
		for i := range original {
			got, want := parsed.Candidates[i], original[i]
			if got.ID != want.ID || got.FullName != want.FullName ||
				got.DateOfBirth != want.DateOfBirth || got.Group != want.Group {
				t.Errorf("member %s changed across round trip: got %+v", want.ID, got)
			}
			if !reflect.DeepEqual([]models.Payment(got.Payments), []models.Payment(want.Payments)) &&
				!(len(got.Payments) == 0 && len(want.Payments) == 0) {
				t.Errorf("member %s payments changed: got %+v want %+v", want.ID, got.Payments, want.Payments)
			}
		}
	}
}
