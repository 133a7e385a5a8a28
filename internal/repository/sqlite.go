package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/helloasmak/vyra/internal/domain"
)

const defaultListLimit = 50

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every connection to an in-memory database is a separate database.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS booking_requests (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			service_type TEXT NOT NULL,
			requested_date TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_booking_requests_created ON booking_requests(created_at)`,
		`CREATE TABLE IF NOT EXISTS partnership_applications (
			id TEXT PRIMARY KEY,
			agency_name TEXT NOT NULL,
			legal_representative TEXT NOT NULL,
			business_email TEXT NOT NULL,
			partnership_type TEXT NOT NULL,
			portfolio TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_partnership_applications_created ON partnership_applications(created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) CreateBooking(ctx context.Context, req *domain.BookingRequest) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO booking_requests (id, full_name, email, service_type, requested_date, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.FullName, req.Email, req.ServiceType, req.RequestedDate, req.Notes, req.CreatedAt)
	return err
}

// GetBooking returns nil, nil when the booking does not exist.
func (s *SQLiteStore) GetBooking(ctx context.Context, id string) (*domain.BookingRequest, error) {
	var req domain.BookingRequest
	err := s.db.QueryRowContext(ctx,
		`SELECT id, full_name, email, service_type, requested_date, notes, created_at
		 FROM booking_requests WHERE id = ?`, id).
		Scan(&req.ID, &req.FullName, &req.Email, &req.ServiceType, &req.RequestedDate, &req.Notes, &req.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListBookings returns the most recent bookings first.
func (s *SQLiteStore) ListBookings(ctx context.Context, limit int) ([]domain.BookingRequest, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, full_name, email, service_type, requested_date, notes, created_at
		 FROM booking_requests ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BookingRequest
	for rows.Next() {
		var req domain.BookingRequest
		if err := rows.Scan(&req.ID, &req.FullName, &req.Email, &req.ServiceType, &req.RequestedDate, &req.Notes, &req.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreatePartnership(ctx context.Context, app *domain.PartnershipApplication) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO partnership_applications (id, agency_name, legal_representative, business_email, partnership_type, portfolio, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		app.ID, app.AgencyName, app.LegalRepresentative, app.BusinessEmail, app.PartnershipType, app.Portfolio, app.CreatedAt)
	return err
}

// GetPartnership returns nil, nil when the application does not exist.
func (s *SQLiteStore) GetPartnership(ctx context.Context, id string) (*domain.PartnershipApplication, error) {
	var app domain.PartnershipApplication
	err := s.db.QueryRowContext(ctx,
		`SELECT id, agency_name, legal_representative, business_email, partnership_type, portfolio, created_at
		 FROM partnership_applications WHERE id = ?`, id).
		Scan(&app.ID, &app.AgencyName, &app.LegalRepresentative, &app.BusinessEmail, &app.PartnershipType, &app.Portfolio, &app.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListPartnerships returns the most recent applications first.
func (s *SQLiteStore) ListPartnerships(ctx context.Context, limit int) ([]domain.PartnershipApplication, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, agency_name, legal_representative, business_email, partnership_type, portfolio, created_at
		 FROM partnership_applications ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PartnershipApplication
	for rows.Next() {
		var app domain.PartnershipApplication
		if err := rows.Scan(&app.ID, &app.AgencyName, &app.LegalRepresentative, &app.BusinessEmail, &app.PartnershipType, &app.Portfolio, &app.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}
