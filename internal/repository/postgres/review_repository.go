package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/excursion-service/internal/domain"
	"github.com/excursion-service/internal/domain/repository"
	"github.com/excursion-service/internal/pkg/errors"
)

type reviewRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReviewRepository(db *DB) repository.ReviewRepository {
	return &reviewRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reviewRepository) CreateExcursion(ctx context.Context, excursion *domain.CompletedExcursion) (*domain.CompletedExcursion, error) {
	query := `
		INSERT INTO completed_excursions (route_id, starts_at, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, excursion.RouteID, excursion.StartsAt).
		Scan(&excursion.ID, &excursion.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create excursion", zap.Int64("route_id", excursion.RouteID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return excursion, nil
}

func (r *reviewRepository) ListExcursions(ctx context.Context, routeID int64) ([]*domain.CompletedExcursion, error) {
	excursions := []*domain.CompletedExcursion{}
	err := r.db.SelectContext(ctx, &excursions,
		`SELECT id, route_id, starts_at, created_at
		 FROM completed_excursions WHERE route_id = $1 ORDER BY starts_at DESC`, routeID)
	if err != nil {
		r.logger.Error("Failed to list excursions", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return excursions, nil
}

func (r *reviewRepository) GetExcursion(ctx context.Context, id int64) (*domain.CompletedExcursion, error) {
	var excursion domain.CompletedExcursion
	err := r.db.GetContext(ctx, &excursion,
		`SELECT id, route_id, starts_at, created_at FROM completed_excursions WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrExcursionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get excursion", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &excursion, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
		INSERT INTO reviews (excursion_id, author_name, email, rating, comment, is_approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		review.ExcursionID, review.AuthorName, review.Email, review.Rating,
		review.Comment, review.IsApproved,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create review", zap.Int64("excursion_id", review.ExcursionID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return review, nil
}

func (r *reviewRepository) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	var review domain.Review
	err := r.db.GetContext(ctx, &review,
		`SELECT id, excursion_id, author_name, email, rating, comment, is_approved, created_at
		 FROM reviews WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrReviewNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get review", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &review, nil
}

func (r *reviewRepository) ListByRoute(ctx context.Context, routeID int64, approvedOnly bool) ([]*domain.ReviewWithExcursion, error) {
	query := `
		SELECT rv.id, rv.excursion_id, rv.author_name, rv.email, rv.rating, rv.comment,
		       rv.is_approved, rv.created_at, ex.starts_at AS excursion_starts_at
		FROM reviews rv
		JOIN completed_excursions ex ON ex.id = rv.excursion_id
		WHERE ex.route_id = $1 AND ($2 = FALSE OR rv.is_approved)
		ORDER BY rv.created_at DESC
	`

	reviews := []*domain.ReviewWithExcursion{}
	if err := r.db.SelectContext(ctx, &reviews, query, routeID, approvedOnly); err != nil {
		r.logger.Error("Failed to list reviews", zap.Int64("route_id", routeID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return reviews, nil
}

func (r *reviewRepository) ListPending(ctx context.Context) ([]*domain.ReviewWithExcursion, error) {
	query := `
		SELECT rv.id, rv.excursion_id, rv.author_name, rv.email, rv.rating, rv.comment,
		       rv.is_approved, rv.created_at, ex.starts_at AS excursion_starts_at
		FROM reviews rv
		JOIN completed_excursions ex ON ex.id = rv.excursion_id
		WHERE NOT rv.is_approved
		ORDER BY rv.created_at
	`

	reviews := []*domain.ReviewWithExcursion{}
	if err := r.db.SelectContext(ctx, &reviews, query); err != nil {
		r.logger.Error("Failed to list pending reviews", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return reviews, nil
}

func (r *reviewRepository) SetApproval(ctx context.Context, id int64, approved bool) (*domain.Review, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET is_approved = $2 WHERE id = $1`, id, approved)
	if err != nil {
		r.logger.Error("Failed to set review approval", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, errors.ErrReviewNotFound
	}
	return r.GetReview(ctx, id)
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete review", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrReviewNotFound
	}
	return nil
}
