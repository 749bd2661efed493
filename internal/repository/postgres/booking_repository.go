package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
)

type bookingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBookingRepository(db *DB) repository.BookingRepository {
	return &bookingRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const bookingColumns = `id, code, route_id, client_name, phone, email, desired_date,
	participants, comment, status, created_at, status_updated_at, internal_notes`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query := `
		INSERT INTO bookings (code, route_id, client_name, phone, email, desired_date,
		                      participants, comment, status, created_at, status_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, status_updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		booking.Code, booking.RouteID, booking.ClientName, booking.Phone, booking.Email,
		booking.DesiredDate, booking.Participants, booking.Comment, booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.StatusUpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrBookingCodeConflict
		}
		r.logger.Error("Failed to create booking", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return booking, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.GetContext(ctx, &booking,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrBookingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get booking", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &booking, nil
}

func (r *bookingRepository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.GetContext(ctx, &booking,
		`SELECT `+bookingColumns+` FROM bookings WHERE code = $1`, code)
	if err == sql.ErrNoRows {
		return nil, errors.ErrBookingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get booking by code", zap.String("code", code), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingWithRoute, error) {
	query := `
		SELECT b.id, b.code, b.route_id, b.client_name, b.phone, b.email, b.desired_date,
		       b.participants, b.comment, b.status, b.created_at, b.status_updated_at,
		       b.internal_notes, r.title AS route_title
		FROM bookings b
		JOIN routes r ON r.id = b.route_id
		WHERE 1=1
	`

	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND b.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.RouteID != nil {
		query += fmt.Sprintf(" AND b.route_id = $%d", argIdx)
		args = append(args, *filter.RouteID)
		argIdx++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(
			" AND (b.code ILIKE '%%' || $%d || '%%' OR b.client_name ILIKE '%%' || $%d || '%%' OR b.phone ILIKE '%%' || $%d || '%%')",
			argIdx, argIdx, argIdx,
		)
		args = append(args, filter.Search)
		argIdx++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND b.desired_date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND b.desired_date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	query += " ORDER BY b.created_at DESC"

	bookings := []*domain.BookingWithRoute{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		r.logger.Error("Failed to list bookings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, id int64, status *domain.BookingStatus, internalNotes *string) (*domain.Booking, error) {
	query := `
		UPDATE bookings
		SET status            = COALESCE($2, status),
		    status_updated_at = CASE WHEN $2 IS NOT NULL THEN NOW() ELSE status_updated_at END,
		    internal_notes    = COALESCE($3, internal_notes)
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, status, internalNotes)
	if err != nil {
		r.logger.Error("Failed to update booking", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, errors.ErrBookingNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *bookingRepository) CountByCodePrefix(ctx context.Context, prefix string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bookings WHERE code LIKE $1 || '%'`, prefix)
	if err != nil {
		r.logger.Error("Failed to count bookings by code prefix", zap.String("prefix", prefix), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

func (r *bookingRepository) SumParticipants(ctx context.Context, routeDateID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(b.participants), 0)
		FROM bookings b
		JOIN route_dates d ON d.route_id = b.route_id AND d.date = b.desired_date
		WHERE d.id = $1 AND b.status <> 'canceled'
	`

	var total int
	if err := r.db.GetContext(ctx, &total, query, routeDateID); err != nil {
		r.logger.Error("Failed to sum booking participants", zap.Int64("date_id", routeDateID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return total, nil
}
