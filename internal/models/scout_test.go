package models

import (
	"errors"
	"testing"

	"github.com/sudanscouts/community-backend/internal/locale"
)

func validScout() Scout {
	return Scout{
		ID:          "101",
		FullName:    "Ali Hassan",
		DateOfBirth: "2010-04-15",
		Address:     "12 Nile Street",
		Group:       locale.TroopBoyScouts,
	}
}

func TestScoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scout)
		errIs  error
	}{
		{name: "valid", mutate: func(s *Scout) {}},
		{name: "missing id", mutate: func(s *Scout) { s.ID = "" }, errIs: ErrScoutIDRequired},
		{name: "short name", mutate: func(s *Scout) { s.FullName = "A" }, errIs: ErrFullNameTooShort},
		{name: "short address", mutate: func(s *Scout) { s.Address = "abc" }, errIs: ErrAddressTooShort},
		{name: "missing dob", mutate: func(s *Scout) { s.DateOfBirth = "" }, errIs: ErrDateOfBirthMissing},
		{name: "non-canonical group", mutate: func(s *Scout) { s.Group = "Sea Scouts" }, errIs: ErrUnknownGroup},
		{name: "bad image url", mutate: func(s *Scout) { s.ImageURL = "not a url" }, errIs: ErrInvalidImageURL},
		{name: "negative payment", mutate: func(s *Scout) {
			s.Payments = []Payment{{Month: "January", Amount: -1, Status: PaymentDue}}
		}, errIs: ErrNegativeAmount},
		{name: "payment without month", mutate: func(s *Scout) {
			s.Payments = []Payment{{Month: "", Amount: 5, Status: PaymentPaid}}
		}, errIs: ErrPaymentMonthEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validScout()
			tt.mutate(&s)
			err := s.Validate()
			if tt.errIs == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.errIs) {
				t.Errorf("Validate() error = %v, want %v", err, tt.errIs)
			}
		})
	}
}

func TestScoutValidateImportedIsLenient(t *testing.T) {
	s := validScout()
	s.Address = ""          // any address passes on import
	s.Group = "Sea Scouts"  // unresolved group is kept
	if err := s.ValidateImported(); err != nil {
		t.Errorf("ValidateImported() error = %v, want nil", err)
	}

	// But an empty group still fails.
	s.Group = ""
	if err := s.ValidateImported(); !errors.Is(err, ErrGroupRequired) {
		t.Errorf("ValidateImported() error = %v, want %v", err, ErrGroupRequired)
	}
}
