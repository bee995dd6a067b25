package validator

import (
	"errors"
	"testing"
	"time"

	"homehive/pkg/logger"
	"homehive/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func testProperty(maxGuests int) *model.Property {
	return &model.Property{
		ID:           "prop-1",
		Title:        "Lekki Beach House",
		NightlyPrice: 100000,
		Currency:     "NGN",
		MaxGuests:    maxGuests,
	}
}

func fixedValidator(t *testing.T, today string) *DraftValidator {
	t.Helper()
	v := NewDraftValidator(testLogger())
	day, err := time.Parse("2006-01-02", today)
	if err != nil {
		t.Fatalf("bad test date %q: %v", today, err)
	}
	v.today = func() time.Time { return day }
	return v
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name       string
		draft      model.BookingDraft
		maxGuests  int
		wantFields []string
	}{
		{
			name: "valid draft",
			draft: model.BookingDraft{
				PropertyID: "prop-1",
				CheckIn:    "2025-06-01",
				CheckOut:   "2025-06-04",
				Guests:     2,
			},
			maxGuests:  4,
			wantFields: nil,
		},
		{
			name: "check-in today is allowed",
			draft: model.BookingDraft{
				PropertyID: "prop-1",
				CheckIn:    "2025-05-20",
				CheckOut:   "2025-05-22",
				Guests:     1,
			},
			maxGuests:  4,
			wantFields: nil,
		},
		{
			name: "check-in in the past",
			draft: model.BookingDraft{
				PropertyID: "prop-1",
				CheckIn:    "2025-05-19",
				CheckOut:   "2025-06-04",
				Guests:     2,
			},
			maxGuests:  4,
			wantFields: []string{"checkIn"},
		},
		{
			name: "check-out equals check-in",
			draft: model.BookingDraft{
				PropertyID: "prop-1",
				CheckIn:    "2025-06-01",
				CheckOut:   "2025-06-01",
				Guests:     2,
			},
			maxGuests:  4,
			wantFields: []string{"checkOut"},
		},
		{
			name: "check-out before check-in",
			draft: model.BookingDraft{
				PropertyID: "prop-1",
				CheckIn:    "2025-06-04",
				CheckOut:   "2025-06-01",
				Guests:     2,
			},
			maxGuests:  4,
			wantFields: []string{"checkOut"},
		},
		{
			name: "guests above capacity",
			draft: model.BookingDraft{
				PropertyID: "prop-1",
				CheckIn:    "2025-06-01",
				CheckOut:   "2025-06-04",
				Guests:     5,
			},
			maxGuests:  4,
			wantFields: []string{"guests"},
		},
		{
			name: "guests below one",
			draft: model.BookingDraft{
				PropertyID: "prop-1",
				CheckIn:    "2025-06-01",
				CheckOut:   "2025-06-04",
				Guests:     0,
			},
			maxGuests:  4,
			wantFields: []string{"guests"},
		},
		{
			name: "malformed dates",
			draft: model.BookingDraft{
				PropertyID: "prop-1",
				CheckIn:    "01/06/2025",
				CheckOut:   "junk",
				Guests:     2,
			},
			maxGuests:  4,
			wantFields: []string{"checkIn", "checkOut"},
		},
		{
			name:       "empty draft reports every field at once",
			draft:      model.BookingDraft{},
			maxGuests:  4,
			wantFields: []string{"propertyId", "checkIn", "checkOut", "guests"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := fixedValidator(t, "2025-05-20")

			err := v.Validate(&tt.draft, testProperty(tt.maxGuests))

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var validationErrs ValidationErrors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("Validate() = %v, want ValidationErrors", err)
			}

			byField := validationErrs.ByField()
			for _, field := range tt.wantFields {
				if _, ok := byField[field]; !ok {
					t.Errorf("expected error for field %q, got %v", field, byField)
				}
			}
		})
	}
}

func TestValidateIsRepeatable(t *testing.T) {
	v := fixedValidator(t, "2025-05-20")
	draft := model.BookingDraft{
		PropertyID: "prop-1",
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-04",
		Guests:     2,
	}

	for i := 0; i < 3; i++ {
		if err := v.Validate(&draft, testProperty(4)); err != nil {
			t.Fatalf("run %d: Validate() = %v, want nil", i, err)
		}
	}
}
