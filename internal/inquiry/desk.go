package inquiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/helloasmak/vyra/internal/domain"
)

// Acknowledgements shown to the guest once an inquiry is recorded.
const (
	BookingAcknowledgement     = "Transmission successful. A liaison will contact you from contact@vyra.ma shortly."
	PartnershipAcknowledgement = "Application transmitted to contact@vyra.ma. Our partnership manager will be in touch within 48 hours."
)

// Repository persists inquiries.
type Repository interface {
	CreateBooking(ctx context.Context, req *domain.BookingRequest) error
	CreatePartnership(ctx context.Context, app *domain.PartnershipApplication) error
}

// Desk validates inquiries and hands them to the repository.
type Desk struct {
	validator *Validator
	repo      Repository
	now       func() time.Time
}

// NewDesk creates a Desk.
func NewDesk(validator *Validator, repo Repository) *Desk {
	return &Desk{validator: validator, repo: repo, now: time.Now}
}

// SubmitBooking validates and records a booking request.
func (d *Desk) SubmitBooking(ctx context.Context, req domain.BookingRequest) (domain.Acknowledgement, error) {
	if err := d.validator.Booking(&req); err != nil {
		return domain.Acknowledgement{}, err
	}

	req.ID = "bk_" + uuid.New().String()
	req.CreatedAt = d.now().UTC()
	if err := d.repo.CreateBooking(ctx, &req); err != nil {
		return domain.Acknowledgement{}, fmt.Errorf("failed to record booking: %w", err)
	}

	slog.InfoContext(ctx, "booking_received", "booking_id", req.ID, "service_type", req.ServiceType)
	return domain.Acknowledgement{ID: req.ID, Message: BookingAcknowledgement}, nil
}

// SubmitPartnership validates and records a partnership application.
func (d *Desk) SubmitPartnership(ctx context.Context, app domain.PartnershipApplication) (domain.Acknowledgement, error) {
	if err := d.validator.Partnership(&app); err != nil {
		return domain.Acknowledgement{}, err
	}

	app.ID = "pa_" + uuid.New().String()
	app.CreatedAt = d.now().UTC()
	if err := d.repo.CreatePartnership(ctx, &app); err != nil {
		return domain.Acknowledgement{}, fmt.Errorf("failed to record partnership application: %w", err)
	}

	slog.InfoContext(ctx, "partnership_received", "application_id", app.ID, "partnership_type", app.PartnershipType)
	return domain.Acknowledgement{ID: app.ID, Message: PartnershipAcknowledgement}, nil
}
