package service

import (
	"context"
	"fmt"

	"github.com/helloasmak/vyra/internal/domain"
)

func (s *Service) SubmitBooking(ctx context.Context, req domain.BookingRequest) (domain.Acknowledgement, error) {
	return s.desk.SubmitBooking(ctx, req)
}

func (s *Service) SubmitPartnership(ctx context.Context, app domain.PartnershipApplication) (domain.Acknowledgement, error) {
	return s.desk.SubmitPartnership(ctx, app)
}

// RecentBookings lists the newest booking requests first.
func (s *Service) RecentBookings(ctx context.Context, limit int) ([]domain.BookingRequest, error) {
	bookings, err := s.store.ListBookings(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *Service) Booking(ctx context.Context, id string) (*domain.BookingRequest, error) {
	booking, err := s.store.GetBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	return booking, nil
}

// RecentPartnerships lists the newest partnership applications first.
func (s *Service) RecentPartnerships(ctx context.Context, limit int) ([]domain.PartnershipApplication, error) {
	apps, err := s.store.ListPartnerships(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list partnerships: %w", err)
	}
	return apps, nil
}

func (s *Service) Partnership(ctx context.Context, id string) (*domain.PartnershipApplication, error) {
	app, err := s.store.GetPartnership(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get partnership: %w", err)
	}
	if app == nil {
		return nil, fmt.Errorf("partnership %s: %w", id, domain.ErrNotFound)
	}
	return app, nil
}
