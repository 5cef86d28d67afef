package repository

import (
	"context"

	"motorlog/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type WorkshopRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewWorkshopRepository(db *pgxpool.Pool, logger *zap.Logger) *WorkshopRepository {
	return &WorkshopRepository{
		db:     db,
		logger: logger,
	}
}

var workshopColumns = []string{"id", "user_id", "name", "phone", "city", "created_at", "updated_at"}

func (r *WorkshopRepository) Create(ctx context.Context, workshop *models.Workshop) error {
	query := squirrel.Insert("workshops").
		Columns(workshopColumns...).
		Values(workshop.ID, workshop.UserID, workshop.Name, workshop.Phone, workshop.City, workshop.CreatedAt, workshop.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *WorkshopRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Workshop, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *WorkshopRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Workshop, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID})
}

func (r *WorkshopRepository) getOne(ctx context.Context, cond squirrel.Eq) (*models.Workshop, error) {
	query := squirrel.Select(workshopColumns...).
		From("workshops").
		Where(cond).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var w models.Workshop
	if err := r.db.QueryRow(ctx, sql, args...).Scan(
		&w.ID, &w.UserID, &w.Name, &w.Phone, &w.City, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &w, nil
}

var overrideColumns = []string{"id", "workshop_id", "category", "item_name", "min_cost", "max_cost", "labor_percent", "created_at", "updated_at"}

func (r *WorkshopRepository) CreateOverride(ctx context.Context, override *models.PriceOverride) error {
	query := squirrel.Insert("price_overrides").
		Columns(overrideColumns...).
		Values(override.ID, override.WorkshopID, override.Category, override.ItemName, override.MinCost, override.MaxCost, override.LaborPercent, override.CreatedAt, override.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *WorkshopRepository) DeleteOverride(ctx context.Context, workshopID, overrideID uuid.UUID) error {
	query := squirrel.Delete("price_overrides").
		Where(squirrel.Eq{"id": overrideID, "workshop_id": workshopID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListOverrides returns the price overrides scoped to one workshop.
func (r *WorkshopRepository) ListOverrides(ctx context.Context, workshopID uuid.UUID) ([]*models.PriceOverride, error) {
	query := squirrel.Select(overrideColumns...).
		From("price_overrides").
		Where(squirrel.Eq{"workshop_id": workshopID}).
		OrderBy("category", "item_name").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []*models.PriceOverride
	for rows.Next() {
		var o models.PriceOverride
		if err := rows.Scan(
			&o.ID, &o.WorkshopID, &o.Category, &o.ItemName, &o.MinCost, &o.MaxCost, &o.LaborPercent, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		overrides = append(overrides, &o)
	}

	return overrides, rows.Err()
}
