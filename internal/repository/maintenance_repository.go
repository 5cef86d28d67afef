package repository

import (
	"context"

	"motorlog/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type MaintenanceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewMaintenanceRepository(db *pgxpool.Pool, logger *zap.Logger) *MaintenanceRepository {
	return &MaintenanceRepository{
		db:     db,
		logger: logger,
	}
}

var maintenanceColumns = []string{"id", "vehicle_id", "workshop_id", "date", "description", "km", "cost", "pending_name", "pending_phone", "pending_email", "created_at"}

func (r *MaintenanceRepository) Create(ctx context.Context, rec *models.MaintenanceRecord) error {
	query := squirrel.Insert("maintenance_records").
		Columns(maintenanceColumns...).
		Values(rec.ID, rec.VehicleID, rec.WorkshopID, rec.Date, rec.Description, rec.Km, rec.Cost, rec.PendingName, rec.PendingPhone, rec.PendingEmail, rec.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Delete is the only mutation allowed on a maintenance record.
func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("maintenance_records").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	query := squirrel.Select(maintenanceColumns...).
		From("maintenance_records").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rec models.MaintenanceRecord
	if err := r.db.QueryRow(ctx, sql, args...).Scan(
		&rec.ID, &rec.VehicleID, &rec.WorkshopID, &rec.Date, &rec.Description, &rec.Km, &rec.Cost, &rec.PendingName, &rec.PendingPhone, &rec.PendingEmail, &rec.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &rec, nil
}

// ListByVehicle returns a vehicle's history, most recent service first.
func (r *MaintenanceRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.MaintenanceRecord, error) {
	return r.list(ctx, squirrel.Eq{"vehicle_id": vehicleID})
}

// ListByWorkshop returns every record a workshop has performed, the input
// snapshot for client aggregation.
func (r *MaintenanceRepository) ListByWorkshop(ctx context.Context, workshopID uuid.UUID) ([]*models.MaintenanceRecord, error) {
	return r.list(ctx, squirrel.Eq{"workshop_id": workshopID})
}

func (r *MaintenanceRepository) list(ctx context.Context, cond squirrel.Eq) ([]*models.MaintenanceRecord, error) {
	query := squirrel.Select(maintenanceColumns...).
		From("maintenance_records").
		Where(cond).
		OrderBy("date DESC").
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

	var records []*models.MaintenanceRecord
	for rows.Next() {
		var rec models.MaintenanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.VehicleID, &rec.WorkshopID, &rec.Date, &rec.Description, &rec.Km, &rec.Cost, &rec.PendingName, &rec.PendingPhone, &rec.PendingEmail, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}
