package spots

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

var spotColumns = []string{
	"id",
	"name",
	"address",
	"city",
	"state",
	"hourly_rate",
	"total_spots",
	"available_spots",
	"operating_hours",
	"status",
	"image_url",
	"created_at",
}

// Repository PostgreSQL репозиторий парковок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория парковок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает парковку по ID.
// Внутри транзакции блокирует строку (FOR UPDATE) - это используется
// usecase-ами бронирования, где за чтением следует изменение счетчика.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(spotColumns...).
		From("parking_spots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	spot, err := scanSpot(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrSpotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan spot: %v", ErrScanRow, err)
	}

	return spot, nil
}

// List возвращает все парковки в стабильном порядке
func (r *Repository) List(ctx context.Context) ([]*domain.ParkingSpot, error) {
	return r.query(ctx, nil, "List")
}

// Search возвращает парковки, у которых name, address или city содержит
// подстроку text (без учета регистра). Пустой запрос возвращает все парковки.
func (r *Repository) Search(ctx context.Context, text string) ([]*domain.ParkingSpot, error) {
	if text == "" {
		return r.List(ctx)
	}

	pattern := "%" + text + "%"
	where := squirrel.Or{
		squirrel.ILike{"name": pattern},
		squirrel.ILike{"address": pattern},
		squirrel.ILike{"city": pattern},
	}

	return r.query(ctx, where, "Search")
}

// UpdateAvailability применяет новое значение счетчика доступных мест:
// ограничивает его диапазоном [0, total_spots], перевычисляет статус и
// сохраняет обе колонки. Возвращает обновленную парковку.
func (r *Repository) UpdateAvailability(ctx context.Context, id string, count int) (*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	spot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Правило clamp-then-derive живет в домене, здесь оно только сохраняется
	spot.ApplyAvailability(count)

	query, args, err := psqlbuilder.Update("parking_spots").
		Set("available_spots", spot.AvailableSpots).
		Set("status", spot.Status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateAvailability - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrSpotNotFound
	}

	return spot, nil
}

func (r *Repository) query(ctx context.Context, where squirrel.Sqlizer, method string) ([]*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(spotColumns...).
		From("parking_spots").
		OrderBy("created_at ASC, id ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	spots := make([]*domain.ParkingSpot, 0)
	for rows.Next() {
		spot, err := scanSpot(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		spots = append(spots, spot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return spots, nil
}

func scanSpot(scan func(dest ...interface{}) error) (*domain.ParkingSpot, error) {
	var spot domain.ParkingSpot
	var createdAt sql.NullTime

	err := scan(
		&spot.ID,
		&spot.Name,
		&spot.Address,
		&spot.City,
		&spot.State,
		&spot.HourlyRate,
		&spot.TotalSpots,
		&spot.AvailableSpots,
		&spot.OperatingHours,
		&spot.Status,
		&spot.ImageURL,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	spot.CreatedAt = createdAt.Time
	return &spot, nil
}
