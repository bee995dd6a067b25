package service

import (
	"context"
	"errors"
	"testing"

	bookingerrors "homehive/internal/booking/errors"
	"homehive/internal/booking/validator"
	"homehive/pkg/currency"
	apperrors "homehive/pkg/errors"
	"homehive/pkg/logger"
	"homehive/pkg/model"
)

type fakeBookingAPI struct {
	created      []model.BookingCreate
	keys         []string
	createErr    error
	availability *model.Availability
	availErr     error
}

func (f *fakeBookingAPI) Create(_ context.Context, booking model.BookingCreate, idempotencyKey string) (*model.Booking, error) {
	f.created = append(f.created, booking)
	f.keys = append(f.keys, idempotencyKey)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Booking{
		ID:          "bk-1",
		PropertyID:  booking.PropertyID,
		CheckIn:     booking.CheckIn,
		CheckOut:    booking.CheckOut,
		Guests:      booking.Guests,
		Nights:      booking.Nights,
		TotalAmount: booking.TotalAmount,
		Status:      model.BookingPending,
	}, nil
}

func (f *fakeBookingAPI) CheckAvailability(_ context.Context, propertyID, checkIn, checkOut string) (*model.Availability, error) {
	if f.availErr != nil {
		return nil, f.availErr
	}
	if f.availability != nil {
		return f.availability, nil
	}
	return &model.Availability{PropertyID: propertyID, CheckIn: checkIn, CheckOut: checkOut, Available: true}, nil
}

type fakeAuth struct {
	authenticated bool
}

func (f *fakeAuth) IsAuthenticated() bool { return f.authenticated }

func newTestWorkflow(api *fakeBookingAPI, auth *fakeAuth) *Workflow {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	return NewWorkflow(WorkflowConfig{
		Bookings:        api,
		Auth:            auth,
		Validator:       validator.NewDraftValidator(log),
		Converter:       currency.NewStaticConverter(),
		DisplayCurrency: "NGN",
		Log:             log,
	})
}

func beachHouse() *model.Property {
	return &model.Property{
		ID:           "prop-1",
		Title:        "Lekki Beach House",
		NightlyPrice: 100000,
		Currency:     "NGN",
		MaxGuests:    4,
	}
}

func TestGuestCounterClamps(t *testing.T) {
	w := newTestWorkflow(&fakeBookingAPI{}, &fakeAuth{})
	w.SetProperty(beachHouse())

	for i := 0; i < 10; i++ {
		w.IncrementGuests()
	}
	if got := w.Draft().Guests; got != 4 {
		t.Errorf("after 10 increments guests = %d, want 4", got)
	}

	for i := 0; i < 25; i++ {
		w.DecrementGuests()
	}
	if got := w.Draft().Guests; got != 1 {
		t.Errorf("after 25 decrements guests = %d, want 1", got)
	}

	w.SetGuests(99)
	if got := w.Draft().Guests; got != 4 {
		t.Errorf("SetGuests(99) = %d, want 4", got)
	}
	w.SetGuests(-5)
	if got := w.Draft().Guests; got != 1 {
		t.Errorf("SetGuests(-5) = %d, want 1", got)
	}
}

func TestSubmitEndToEnd(t *testing.T) {
	api := &fakeBookingAPI{}
	w := newTestWorkflow(api, &fakeAuth{authenticated: true})
	w.SetProperty(beachHouse())
	w.SetCheckIn("2027-06-01")
	w.SetCheckOut("2027-06-04")
	w.SetGuests(2)

	booking, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if len(api.created) != 1 {
		t.Fatalf("booking-create called %d times, want 1", len(api.created))
	}
	payload := api.created[0]
	if payload.PropertyID != "prop-1" || payload.Guests != 2 {
		t.Errorf("payload = %+v, want propertyId=prop-1 guests=2", payload)
	}
	if payload.Nights != 3 {
		t.Errorf("payload nights = %d, want 3", payload.Nights)
	}
	if payload.TotalAmount != 300000 {
		t.Errorf("payload total = %f, want 300000", payload.TotalAmount)
	}
	if api.keys[0] == "" {
		t.Error("submission carried no idempotency key")
	}
	if booking.ID != "bk-1" {
		t.Errorf("booking id = %q, want bk-1", booking.ID)
	}

	// Draft resets after a successful submission.
	draft := w.Draft()
	if draft.CheckIn != "" || draft.CheckOut != "" || draft.Guests != 1 {
		t.Errorf("draft not reset: %+v", draft)
	}
	if w.State() != StateEditing {
		t.Errorf("state = %q, want %q", w.State(), StateEditing)
	}
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	api := &fakeBookingAPI{}
	w := newTestWorkflow(api, &fakeAuth{authenticated: false})
	w.SetProperty(beachHouse())
	w.SetCheckIn("2027-06-01")
	w.SetCheckOut("2027-06-04")

	_, err := w.Submit(context.Background())
	if !errors.Is(err, bookingerrors.ErrNotAuthenticated) {
		t.Fatalf("Submit() error = %v, want ErrNotAuthenticated", err)
	}
	if len(api.created) != 0 {
		t.Errorf("booking-create called %d times, want 0", len(api.created))
	}
}

func TestSubmitRevalidates(t *testing.T) {
	api := &fakeBookingAPI{}
	w := newTestWorkflow(api, &fakeAuth{authenticated: true})
	w.SetProperty(beachHouse())
	w.SetCheckIn("2027-06-04")
	w.SetCheckOut("2027-06-01")

	_, err := w.Submit(context.Background())
	if err == nil {
		t.Fatal("Submit() with inverted dates succeeded, want validation failure")
	}
	if len(api.created) != 0 {
		t.Errorf("booking-create called %d times, want 0", len(api.created))
	}
	if _, ok := w.FieldErrors()["checkOut"]; !ok {
		t.Errorf("expected checkOut field error, got %v", w.FieldErrors())
	}
}

func TestSubmitSurfacesBackendErrorVerbatim(t *testing.T) {
	api := &fakeBookingAPI{
		createErr: apperrors.Backend("Property unavailable for the selected dates", 409),
	}
	w := newTestWorkflow(api, &fakeAuth{authenticated: true})
	w.SetProperty(beachHouse())
	w.SetCheckIn("2027-06-01")
	w.SetCheckOut("2027-06-04")

	_, err := w.Submit(context.Background())
	if err == nil {
		t.Fatal("Submit() succeeded, want backend failure")
	}
	if got := w.GeneralError(); got != "Property unavailable for the selected dates" {
		t.Errorf("GeneralError() = %q, want verbatim backend message", got)
	}

	// Draft survives a failed submission so the user can retry.
	if w.Draft().CheckIn != "2027-06-01" {
		t.Errorf("draft was reset on failure: %+v", w.Draft())
	}
}

func TestUnavailableBlocksSubmitUntilDatesChange(t *testing.T) {
	api := &fakeBookingAPI{
		availability: &model.Availability{Available: false, Reason: "Those dates are taken"},
	}
	w := newTestWorkflow(api, &fakeAuth{authenticated: true})
	w.SetProperty(beachHouse())
	w.SetCheckIn("2027-06-01")
	w.SetCheckOut("2027-06-04")

	available, err := w.CheckAvailability(context.Background())
	if err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}
	if available {
		t.Fatal("CheckAvailability() = true, want false")
	}
	if got := w.GeneralError(); got != "Those dates are taken" {
		t.Errorf("GeneralError() = %q, want backend reason", got)
	}

	if _, err := w.Submit(context.Background()); !errors.Is(err, bookingerrors.ErrUnavailable) {
		t.Fatalf("Submit() error = %v, want ErrUnavailable", err)
	}

	// Editing a date clears the block; the next check may pass.
	w.SetCheckIn("2027-06-02")
	api.availability = nil
	available, err = w.CheckAvailability(context.Background())
	if err != nil || !available {
		t.Fatalf("CheckAvailability() after date change = (%v, %v), want (true, nil)", available, err)
	}
	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() after date change error = %v", err)
	}
}

func TestValidateClearsStaleGeneralError(t *testing.T) {
	api := &fakeBookingAPI{
		createErr: apperrors.Backend("Property unavailable for the selected dates", 409),
	}
	w := newTestWorkflow(api, &fakeAuth{authenticated: true})
	w.SetProperty(beachHouse())
	w.SetCheckIn("2027-06-01")
	w.SetCheckOut("2027-06-04")

	if _, err := w.Submit(context.Background()); err == nil {
		t.Fatal("Submit() succeeded, want backend failure")
	}
	if w.GeneralError() == "" {
		t.Fatal("expected a general error after the failed submission")
	}

	if !w.Validate() {
		t.Fatal("Validate() = false for a valid draft")
	}
	if got := w.GeneralError(); got != "" {
		t.Errorf("GeneralError() = %q after successful validation, want empty", got)
	}
}

func TestQuoteReactsToCurrencyChange(t *testing.T) {
	w := newTestWorkflow(&fakeBookingAPI{}, &fakeAuth{})
	w.SetProperty(beachHouse())
	w.SetCheckIn("2027-06-01")
	w.SetCheckOut("2027-06-04")

	ngn, err := w.Quote()
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if ngn.Total != 300000 {
		t.Errorf("NGN total = %f, want 300000", ngn.Total)
	}

	w.SetDisplayCurrency("usd")
	usd, err := w.Quote()
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if usd.Currency != "USD" {
		t.Errorf("currency = %q, want USD (normalized)", usd.Currency)
	}
	if usd.Nights != ngn.Nights {
		t.Errorf("nights changed with currency: %d vs %d", usd.Nights, ngn.Nights)
	}
	if usd.Total == ngn.Total {
		t.Error("total did not change with currency")
	}
}
