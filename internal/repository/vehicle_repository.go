package repository

import (
	"context"

	"motorlog/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type VehicleRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewVehicleRepository(db *pgxpool.Pool, logger *zap.Logger) *VehicleRepository {
	return &VehicleRepository{
		db:     db,
		logger: logger,
	}
}

var vehicleColumns = []string{"id", "owner_id", "plate", "category", "brand", "model", "year", "current_km", "registration_km", "created_at", "updated_at"}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	query := squirrel.Insert("vehicles").
		Columns(vehicleColumns...).
		Values(vehicle.ID, vehicle.OwnerID, vehicle.Plate, vehicle.Category, vehicle.Brand, vehicle.Model, vehicle.Year, vehicle.CurrentKm, vehicle.RegistrationKm, vehicle.CreatedAt, vehicle.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *models.Vehicle) error {
	query := squirrel.Update("vehicles").
		Set("owner_id", vehicle.OwnerID).
		Set("plate", vehicle.Plate).
		Set("category", vehicle.Category).
		Set("brand", vehicle.Brand).
		Set("model", vehicle.Model).
		Set("year", vehicle.Year).
		Set("current_km", vehicle.CurrentKm).
		Set("updated_at", vehicle.UpdatedAt).
		Where(squirrel.Eq{"id": vehicle.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("vehicles").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	return r.getOne(ctx, squirrel.Eq{"plate": plate})
}

// ListByOwner returns the vehicles claimed by one registered user.
func (r *VehicleRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error) {
	return r.list(ctx, squirrel.Eq{"owner_id": ownerID})
}

// ListByIDs fetches a snapshot of vehicles for aggregation.
func (r *VehicleRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, squirrel.Eq{"id": ids})
}

func (r *VehicleRepository) list(ctx context.Context, cond squirrel.Eq) ([]*models.Vehicle, error) {
	query := squirrel.Select(vehicleColumns...).
		From("vehicles").
		Where(cond).
		OrderBy("created_at DESC").
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

	var vehicles []*models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Plate, &v.Category, &v.Brand, &v.Model, &v.Year, &v.CurrentKm, &v.RegistrationKm, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &v)
	}

	return vehicles, rows.Err()
}

func (r *VehicleRepository) getOne(ctx context.Context, cond squirrel.Eq) (*models.Vehicle, error) {
	query := squirrel.Select(vehicleColumns...).
		From("vehicles").
		Where(cond).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var v models.Vehicle
	if err := r.db.QueryRow(ctx, sql, args...).Scan(
		&v.ID, &v.OwnerID, &v.Plate, &v.Category, &v.Brand, &v.Model, &v.Year, &v.CurrentKm, &v.RegistrationKm, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &v, nil
}
