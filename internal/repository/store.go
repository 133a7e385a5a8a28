// Package store persists inquiries submitted through the site's forms.
package store

import (
	"context"

	"github.com/helloasmak/vyra/internal/domain"
)

// Store defines the interface for inquiry persistence.
type Store interface {
	// Booking operations
	CreateBooking(ctx context.Context, req *domain.BookingRequest) error
	GetBooking(ctx context.Context, id string) (*domain.BookingRequest, error)
	ListBookings(ctx context.Context, limit int) ([]domain.BookingRequest, error)

	// Partnership operations
	CreatePartnership(ctx context.Context, app *domain.PartnershipApplication) error
	GetPartnership(ctx context.Context, id string) (*domain.PartnershipApplication, error)
	ListPartnerships(ctx context.Context, limit int) ([]domain.PartnershipApplication, error)

	Ping(ctx context.Context) error
	Close() error
}

var _ Store = (*SQLiteStore)(nil)
