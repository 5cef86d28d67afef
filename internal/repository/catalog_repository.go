package repository

import (
	"context"

	"motorlog/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CatalogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCatalogRepository(db *pgxpool.Pool, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger,
	}
}

var catalogColumns = []string{"id", "category", "name", "km_interval", "month_interval", "criticality", "min_cost", "max_cost", "created_at", "updated_at"}

func (r *CatalogRepository) Create(ctx context.Context, item *models.CatalogItem) error {
	query := squirrel.Insert("catalog_items").
		Columns(catalogColumns...).
		Values(item.ID, item.Category, item.Name, item.KmInterval, item.MonthInterval, item.Criticality, item.MinCost, item.MaxCost, item.CreatedAt, item.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CatalogRepository) CreateBatch(ctx context.Context, items []*models.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}

	builder := squirrel.Insert("catalog_items").
		Columns(catalogColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, item := range items {
		builder = builder.Values(item.ID, item.Category, item.Name, item.KmInterval, item.MonthInterval, item.Criticality, item.MinCost, item.MaxCost, item.CreatedAt, item.UpdatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListAll loads the full maintenance catalog for engine validation at startup.
func (r *CatalogRepository) ListAll(ctx context.Context) ([]models.CatalogItem, error) {
	query := squirrel.Select(catalogColumns...).
		From("catalog_items").
		OrderBy("category", "name").
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

	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(
			&item.ID, &item.Category, &item.Name, &item.KmInterval, &item.MonthInterval, &item.Criticality, &item.MinCost, &item.MaxCost, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *CatalogRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := squirrel.Select("COUNT(*)").From("catalog_items").ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
