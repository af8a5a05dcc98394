package bookings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"parking_spot_id",
	"vehicle_number",
	"vehicle_type",
	"start_time",
	"end_time",
	"expected_duration_hours",
	"total_cost",
	"status",
	"spot_name",
	"spot_hourly_rate",
	"created_at",
}

// Repository PostgreSQL репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Вызывается внутри сериализуемой транзакции вместе с изменением счетчика
// доступных мест парковки (см. usecase create_booking).
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"parking_spot_id",
			"vehicle_number",
			"vehicle_type",
			"start_time",
			"end_time",
			"expected_duration_hours",
			"total_cost",
			"status",
			"spot_name",
			"spot_hourly_rate",
		).
		Values(
			booking.ID,
			booking.UserID,
			booking.ParkingSpotID,
			booking.VehicleNumber,
			booking.VehicleType,
			booking.StartTime,
			booking.EndTime,
			booking.ExpectedDurationHours,
			booking.TotalCost,
			booking.Status,
			booking.SpotName,
			booking.SpotHourlyRate,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	return booking, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции блокирует строку (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает бронирования пользователя, новые сначала.
// Опционально фильтрует по статусу.
func (r *Repository) GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC, id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Complete переводит бронирование в completed, фиксируя время окончания и
// итоговую стоимость. Проверка допустимости перехода выполняется в usecase.
func (r *Repository) Complete(ctx context.Context, id string, endTime time.Time, totalCost float64) error {
	return r.update(ctx, id, "Complete", map[string]interface{}{
		"status":     domain.StatusCompleted,
		"end_time":   endTime,
		"total_cost": totalCost,
	})
}

// Cancel переводит бронирование в cancelled. Стоимость не фиксируется.
func (r *Repository) Cancel(ctx context.Context, id string) error {
	return r.update(ctx, id, "Cancel", map[string]interface{}{
		"status": domain.StatusCancelled,
	})
}

func (r *Repository) update(ctx context.Context, id string, method string, set map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Where(squirrel.Eq{"id": id})
	for column, value := range set {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, method, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var booking domain.Booking
	var endTime sql.NullTime
	var totalCost sql.NullFloat64
	var createdAt sql.NullTime

	err := scan(
		&booking.ID,
		&booking.UserID,
		&booking.ParkingSpotID,
		&booking.VehicleNumber,
		&booking.VehicleType,
		&booking.StartTime,
		&endTime,
		&booking.ExpectedDurationHours,
		&totalCost,
		&booking.Status,
		&booking.SpotName,
		&booking.SpotHourlyRate,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		booking.EndTime = &endTime.Time
	}
	if totalCost.Valid {
		booking.TotalCost = &totalCost.Float64
	}
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}
