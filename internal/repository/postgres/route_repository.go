package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
)

type routeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *routeRepository) List(ctx context.Context, includeUnpublished bool, search string) ([]*domain.Route, error) {
	query := `
		SELECT id, title, description, duration_hours, price_adult, price_child,
		       price_group, max_participants, is_published, created_at, updated_at
		FROM routes
		WHERE ($1 OR is_published)
		  AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
	`

	var routes []*domain.Route
	if err := r.db.SelectContext(ctx, &routes, query, includeUnpublished, search); err != nil {
		r.logger.Error("Failed to list routes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if len(routes) == 0 {
		return []*domain.Route{}, nil
	}

	ids := make([]int64, 0, len(routes))
	byID := make(map[int64]*domain.Route, len(routes))
	for _, rt := range routes {
		rt.Points = []domain.Point{}
		rt.Photos = []domain.Photo{}
		ids = append(ids, rt.ID)
		byID[rt.ID] = rt
	}

	var points []domain.Point
	pointsQuery := `
		SELECT id, route_id, title, description, lat, lng, point_type, visit_minutes, order_index
		FROM route_points
		WHERE route_id = ANY($1)
		ORDER BY route_id, order_index
	`
	if err := r.db.SelectContext(ctx, &points, pointsQuery, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to load route points", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	for _, p := range points {
		byID[p.RouteID].Points = append(byID[p.RouteID].Points, p)
	}

	var photos []domain.Photo
	photosQuery := `
		SELECT id, route_id, file_path, sort_order, is_cover
		FROM route_photos
		WHERE route_id = ANY($1)
		ORDER BY route_id, sort_order
	`
	if err := r.db.SelectContext(ctx, &photos, photosQuery, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to load route photos", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	for _, ph := range photos {
		byID[ph.RouteID].Photos = append(byID[ph.RouteID].Photos, ph)
	}

	return routes, nil
}

func (r *routeRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	query := `
		SELECT id, title, description, duration_hours, price_adult, price_child,
		       price_group, max_participants, is_published, created_at, updated_at
		FROM routes
		WHERE id = $1
	`

	var route domain.Route
	err := r.db.GetContext(ctx, &route, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRouteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	route.Points = []domain.Point{}
	route.Photos = []domain.Photo{}

	pointsQuery := `
		SELECT id, route_id, title, description, lat, lng, point_type, visit_minutes, order_index
		FROM route_points
		WHERE route_id = $1
		ORDER BY order_index
	`
	if err := r.db.SelectContext(ctx, &route.Points, pointsQuery, id); err != nil {
		r.logger.Error("Failed to load route points", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	photosQuery := `
		SELECT id, route_id, file_path, sort_order, is_cover
		FROM route_photos
		WHERE route_id = $1
		ORDER BY sort_order
	`
	if err := r.db.SelectContext(ctx, &route.Photos, photosQuery, id); err != nil {
		r.logger.Error("Failed to load route photos", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &route, nil
}

func (r *routeRepository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		INSERT INTO routes (title, description, duration_hours, price_adult, price_child,
		                    price_group, max_participants, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, query,
		route.Title, route.Description, route.DurationHours, route.PriceAdult,
		route.PriceChild, route.PriceGroup, route.MaxParticipants, route.IsPublished,
	).Scan(&route.ID, &route.CreatedAt, &route.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to insert route", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.insertChildren(ctx, tx, route); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit route", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.GetByID(ctx, route.ID)
}

// Replace перезаписывает маршрут целиком: атрибуты обновляются,
// точки и фотографии удаляются и вставляются заново одной транзакцией
func (r *routeRepository) Replace(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		UPDATE routes
		SET title = $2, description = $3, duration_hours = $4, price_adult = $5,
		    price_child = $6, price_group = $7, max_participants = $8,
		    is_published = $9, updated_at = NOW()
		WHERE id = $1
	`
	res, err := tx.ExecContext(ctx, query,
		route.ID, route.Title, route.Description, route.DurationHours, route.PriceAdult,
		route.PriceChild, route.PriceGroup, route.MaxParticipants, route.IsPublished,
	)
	if err != nil {
		r.logger.Error("Failed to update route", zap.Int64("id", route.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, errors.ErrRouteNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM route_points WHERE route_id = $1`, route.ID); err != nil {
		r.logger.Error("Failed to delete route points", zap.Int64("id", route.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM route_photos WHERE route_id = $1`, route.ID); err != nil {
		r.logger.Error("Failed to delete route photos", zap.Int64("id", route.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.insertChildren(ctx, tx, route); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit route replace", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.GetByID(ctx, route.ID)
}

func (r *routeRepository) insertChildren(ctx context.Context, tx *sqlx.Tx, route *domain.Route) error {
	pointQuery := `
		INSERT INTO route_points (route_id, title, description, lat, lng, point_type, visit_minutes, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, p := range route.Points {
		if _, err := tx.ExecContext(ctx, pointQuery,
			route.ID, p.Title, p.Description, p.Lat, p.Lng, p.PointType, p.VisitMinutes, p.OrderIndex,
		); err != nil {
			r.logger.Error("Failed to insert route point", zap.Int64("route_id", route.ID), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	photoQuery := `
		INSERT INTO route_photos (route_id, file_path, sort_order, is_cover)
		VALUES ($1, $2, $3, $4)
	`
	for _, ph := range route.Photos {
		if _, err := tx.ExecContext(ctx, photoQuery,
			route.ID, ph.FilePath, ph.SortOrder, ph.IsCover,
		); err != nil {
			r.logger.Error("Failed to insert route photo", zap.Int64("route_id", route.ID), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	return nil
}

func (r *routeRepository) Archive(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE routes SET is_published = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to archive route", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrRouteNotFound
	}
	return nil
}

func (r *routeRepository) ListDates(ctx context.Context, routeID int64) ([]*domain.RouteDate, error) {
	query := `
		SELECT d.id, d.route_id, d.date, d.is_active,
		       EXISTS (
		           SELECT 1 FROM bookings b
		           WHERE b.route_id = d.route_id
		             AND b.desired_date = d.date
		             AND b.status <> 'canceled'
		       ) AS is_booked,
		       d.created_at
		FROM route_dates d
		WHERE d.route_id = $1
		ORDER BY d.date
	`

	dates := []*domain.RouteDate{}
	if err := r.db.SelectContext(ctx, &dates, query, routeID); err != nil {
		r.logger.Error("Failed to list route dates", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return dates, nil
}

func (r *routeRepository) ListAvailableDates(ctx context.Context, routeID int64) ([]*domain.RouteDate, error) {
	query := `
		SELECT d.id, d.route_id, d.date, d.is_active, FALSE AS is_booked, d.created_at
		FROM route_dates d
		WHERE d.route_id = $1
		  AND d.is_active
		  AND d.date >= CURRENT_DATE
		  AND NOT EXISTS (
		      SELECT 1 FROM bookings b
		      WHERE b.route_id = d.route_id
		        AND b.desired_date = d.date
		        AND b.status <> 'canceled'
		  )
		ORDER BY d.date
	`

	dates := []*domain.RouteDate{}
	if err := r.db.SelectContext(ctx, &dates, query, routeID); err != nil {
		r.logger.Error("Failed to list available route dates", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return dates, nil
}

func (r *routeRepository) GetDate(ctx context.Context, dateID int64) (*domain.RouteDate, error) {
	query := `
		SELECT d.id, d.route_id, d.date, d.is_active,
		       EXISTS (
		           SELECT 1 FROM bookings b
		           WHERE b.route_id = d.route_id
		             AND b.desired_date = d.date
		             AND b.status <> 'canceled'
		       ) AS is_booked,
		       d.created_at
		FROM route_dates d
		WHERE d.id = $1
	`

	var date domain.RouteDate
	err := r.db.GetContext(ctx, &date, query, dateID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRouteDateNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route date", zap.Int64("id", dateID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &date, nil
}

func (r *routeRepository) FindDate(ctx context.Context, routeID int64, date time.Time) (*domain.RouteDate, error) {
	query := `
		SELECT id, route_id, date, is_active, FALSE AS is_booked, created_at
		FROM route_dates
		WHERE route_id = $1 AND date = $2
	`

	var rd domain.RouteDate
	err := r.db.GetContext(ctx, &rd, query, routeID, date)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRouteDateNotFound
	}
	if err != nil {
		r.logger.Error("Failed to find route date", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &rd, nil
}

func (r *routeRepository) CreateDate(ctx context.Context, date *domain.RouteDate) (*domain.RouteDate, error) {
	query := `
		INSERT INTO route_dates (route_id, date, is_active, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, date.RouteID, date.Date, date.IsActive).
		Scan(&date.ID, &date.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create route date", zap.Int64("route_id", date.RouteID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return date, nil
}

func (r *routeRepository) UpdateDate(ctx context.Context, dateID int64, isActive bool) (*domain.RouteDate, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE route_dates SET is_active = $2 WHERE id = $1`, dateID, isActive)
	if err != nil {
		r.logger.Error("Failed to update route date", zap.Int64("id", dateID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, errors.ErrRouteDateNotFound
	}
	return r.GetDate(ctx, dateID)
}

func (r *routeRepository) DeleteDate(ctx context.Context, dateID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM route_dates WHERE id = $1`, dateID)
	if err != nil {
		r.logger.Error("Failed to delete route date", zap.Int64("id", dateID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrRouteDateNotFound
	}
	return nil
}

func (r *routeRepository) CountDateBookings(ctx context.Context, dateID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN route_dates d ON d.route_id = b.route_id AND d.date = b.desired_date
		WHERE d.id = $1 AND b.status <> 'canceled'
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, dateID); err != nil {
		r.logger.Error("Failed to count date bookings", zap.Int64("date_id", dateID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
