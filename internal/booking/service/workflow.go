package service

import (
	"context"
	"errors"
	"sync"

	bookingerrors "homehive/internal/booking/errors"
	"homehive/internal/booking/validator"
	"homehive/pkg/currency"
	apperrors "homehive/pkg/errors"
	"homehive/pkg/logger"
	"homehive/pkg/model"
	"homehive/pkg/sanitizer"

	"github.com/google/uuid"
)

type State string

const (
	StateEditing              State = "editing"
	StateValidating           State = "validating"
	StateCheckingAvailability State = "checking_availability"
	StateSubmitting           State = "submitting"
)

// BookingAPI is the slice of the API facade the workflow drives.
type BookingAPI interface {
	Create(ctx context.Context, booking model.BookingCreate, idempotencyKey string) (*model.Booking, error)
	CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) (*model.Availability, error)
}

// AuthState answers the only session question the workflow asks.
type AuthState interface {
	IsAuthenticated() bool
}

// Workflow turns a property plus user-entered dates and guests into a
// validated, priced booking request and drives the submission lifecycle.
// All methods are safe for concurrent use; a second Submit while one is in
// flight fails fast instead of double-booking.
type Workflow struct {
	bookings  BookingAPI
	auth      AuthState
	validator *validator.DraftValidator
	converter currency.Converter
	log       *logger.Logger

	mu              sync.Mutex
	state           State
	property        *model.Property
	draft           model.BookingDraft
	displayCurrency string
	fieldErrors     map[string]string
	generalError    string
	unavailable     bool
	submitting      bool

	newIdempotencyKey func() string
}

type WorkflowConfig struct {
	Bookings        BookingAPI
	Auth            AuthState
	Validator       *validator.DraftValidator
	Converter       currency.Converter
	DisplayCurrency string
	Log             *logger.Logger
}

func NewWorkflow(cfg WorkflowConfig) *Workflow {
	return &Workflow{
		bookings:          cfg.Bookings,
		auth:              cfg.Auth,
		validator:         cfg.Validator,
		converter:         cfg.Converter,
		log:               cfg.Log,
		state:             StateEditing,
		displayCurrency:   sanitizer.NormalizeCurrency(cfg.DisplayCurrency),
		draft:             model.BookingDraft{Guests: 1},
		fieldErrors:       map[string]string{},
		newIdempotencyKey: uuid.NewString,
	}
}

// SetProperty binds the workflow to a listing and resets the draft.
func (w *Workflow) SetProperty(property *model.Property) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.property = property
	w.draft = model.BookingDraft{Guests: 1}
	if property != nil {
		w.draft.PropertyID = property.ID
	}
	w.fieldErrors = map[string]string{}
	w.generalError = ""
	w.unavailable = false
	w.state = StateEditing
}

func (w *Workflow) SetCheckIn(date string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.CheckIn = date
	// A date change invalidates any earlier availability verdict.
	w.unavailable = false
}

func (w *Workflow) SetCheckOut(date string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.CheckOut = date
	w.unavailable = false
}

func (w *Workflow) SetGuests(guests int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Guests = sanitizer.Clamp(guests, 1, w.maxGuests())
}

// IncrementGuests bumps the counter by one, clamped to the property's
// capacity. Each call is an atomic transition against the current clamped
// value, so no call ordering can push the counter out of range.
func (w *Workflow) IncrementGuests() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Guests = sanitizer.Clamp(w.draft.Guests+1, 1, w.maxGuests())
	return w.draft.Guests
}

func (w *Workflow) DecrementGuests() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Guests = sanitizer.Clamp(w.draft.Guests-1, 1, w.maxGuests())
	return w.draft.Guests
}

func (w *Workflow) SetDisplayCurrency(code string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.displayCurrency = sanitizer.NormalizeCurrency(code)
}

func (w *Workflow) Draft() model.BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Workflow) FieldErrors() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make(map[string]string, len(w.fieldErrors))
	for k, v := range w.fieldErrors {
		out[k] = v
	}
	return out
}

func (w *Workflow) GeneralError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generalError
}

// Quote recomputes pricing from the current inputs. Nothing is memoized:
// changing dates, property, or display currency is reflected immediately.
func (w *Workflow) Quote() (model.Quote, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return ComputeQuote(w.property, &w.draft, w.displayCurrency, w.converter)
}

// Validate runs the full rule set and records field errors. Returns true
// when the draft is submittable.
func (w *Workflow) Validate() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.validateLocked()
}

func (w *Workflow) validateLocked() bool {
	w.state = StateValidating
	defer func() { w.state = StateEditing }()

	err := w.validator.Validate(&w.draft, w.property)
	if err == nil {
		w.fieldErrors = map[string]string{}
		// A now-valid draft also discards any stale general message from an
		// earlier failed attempt.
		w.generalError = ""
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		w.fieldErrors = validationErrs.ByField()
	} else {
		w.generalError = err.Error()
	}
	return false
}

// CheckAvailability asks the backend whether the drafted date range is open.
// A negative answer blocks submission until the dates change. The answer is
// advisory either way: submission re-validates server-side.
func (w *Workflow) CheckAvailability(ctx context.Context) (bool, error) {
	w.mu.Lock()
	if w.property == nil {
		w.mu.Unlock()
		return false, bookingerrors.ErrNoProperty
	}
	if !w.validateLocked() {
		w.mu.Unlock()
		return false, nil
	}
	w.state = StateCheckingAvailability
	propertyID, checkIn, checkOut := w.draft.PropertyID, w.draft.CheckIn, w.draft.CheckOut
	w.mu.Unlock()

	availability, err := w.bookings.CheckAvailability(ctx, propertyID, checkIn, checkOut)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = StateEditing

	if err != nil {
		w.generalError = userMessage(err)
		return false, err
	}

	if !availability.Available {
		w.unavailable = true
		w.generalError = availability.Reason
		if w.generalError == "" {
			w.generalError = bookingerrors.ErrUnavailable.Error()
		}
		return false, nil
	}

	w.unavailable = false
	w.generalError = ""
	return true, nil
}

// submitStep is one stage of the submission pipeline.
type submitStep struct {
	name string
	run  func(ctx context.Context) error
}

// Submit re-runs validation and sends the booking with a fresh idempotency
// key. On success the draft resets to empty; on failure the backend's
// message is surfaced verbatim as the general form error.
func (w *Workflow) Submit(ctx context.Context) (*model.Booking, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return nil, bookingerrors.ErrSubmissionInFlight
	}
	w.submitting = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.submitting = false
		w.state = StateEditing
		w.mu.Unlock()
	}()

	var created *model.Booking

	steps := []submitStep{
		{"authenticate", w.stepAuthenticate},
		{"validate", w.stepValidate},
		{"create booking", func(ctx context.Context) error {
			var err error
			created, err = w.stepCreate(ctx)
			return err
		}},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			w.log.Warn("Booking submission stopped", "step", step.name, "error", err)
			return nil, err
		}
	}

	w.mu.Lock()
	w.draft.Reset()
	w.fieldErrors = map[string]string{}
	w.generalError = ""
	w.mu.Unlock()

	w.log.Info("Booking submitted successfully",
		"booking_id", created.ID,
		"property_id", created.PropertyID,
		"nights", created.Nights,
	)
	return created, nil
}

func (w *Workflow) stepAuthenticate(_ context.Context) error {
	if !w.auth.IsAuthenticated() {
		return bookingerrors.ErrNotAuthenticated
	}
	return nil
}

func (w *Workflow) stepValidate(_ context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.property == nil {
		return bookingerrors.ErrNoProperty
	}
	if w.unavailable {
		w.generalError = bookingerrors.ErrUnavailable.Error()
		return bookingerrors.ErrUnavailable
	}
	if !w.validateLocked() {
		return apperrors.Validation("Booking draft validation failed", map[string]any{
			"fields": w.fieldErrors,
		})
	}
	return nil
}

func (w *Workflow) stepCreate(ctx context.Context) (*model.Booking, error) {
	w.mu.Lock()
	w.state = StateSubmitting
	quote, err := ComputeQuote(w.property, &w.draft, w.displayCurrency, w.converter)
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	payload := model.BookingCreate{
		PropertyID:  w.draft.PropertyID,
		CheckIn:     w.draft.CheckIn,
		CheckOut:    w.draft.CheckOut,
		Guests:      w.draft.Guests,
		Nights:      quote.Nights,
		TotalAmount: quote.Total,
		Currency:    quote.Currency,
	}
	key := w.newIdempotencyKey()
	w.mu.Unlock()

	created, err := w.bookings.Create(ctx, payload, key)
	if err != nil {
		w.mu.Lock()
		w.generalError = userMessage(err)
		w.mu.Unlock()
		return nil, err
	}
	return created, nil
}

func (w *Workflow) maxGuests() int {
	if w.property == nil || w.property.MaxGuests < 1 {
		return 1
	}
	return w.property.MaxGuests
}

// userMessage extracts the message worth showing to the user: backend
// business errors verbatim, everything else as-is.
func userMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return err.Error()
}
