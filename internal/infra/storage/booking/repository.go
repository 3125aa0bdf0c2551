package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	"github.com/m04kA/SC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SC-SchedulingService/pkg/types"
)

// Имя частичного уникального индекса занятости слота.
// Индекс - источник истины по двойным бронированиям: проверка доступности
// в usecase остаётся быстрым предварительным отказом, но не единственной гарантией.
const slotUniqueIndex = "bookings_staff_slot_active_key"

var bookingColumns = []string{
	"id",
	"client_id",
	"service_id",
	"staff_id",
	"booking_date",
	"start_time",
	"status",
	"notes",
	"client_name",
	"client_phone",
	"service_name",
	"service_price",
	"staff_name",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте есть активная транзакция, выполняется внутри неё.
// Нарушение уникального индекса занятости слота конвертируется в ErrSlotTaken -
// так гонка двух конкурентных созданий разрешается на уровне хранилища.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"client_id",
			"service_id",
			"staff_id",
			"booking_date",
			"start_time",
			"status",
			"notes",
			"client_name",
			"client_phone",
			"service_name",
			"service_price",
			"staff_name",
		).
		Values(
			booking.ClientID,
			booking.ServiceID,
			booking.StaffID,
			booking.BookingDate,
			booking.StartTime,
			booking.Status,
			booking.Notes,
			booking.ClientName,
			booking.ClientPhone,
			booking.ServiceName,
			booking.ServicePrice,
			booking.StaffName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, slotUniqueIndex) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.ServiceID,
		&booking.StaffID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Status,
		&booking.Notes,
		&booking.ClientName,
		&booking.ClientPhone,
		&booking.ServiceName,
		&booking.ServicePrice,
		&booking.StaffName,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// FindActiveSlot ищет неотменённую запись на точный слот (сотрудник, дата, время).
// Возвращает ErrBookingNotFound, если слот свободен.
// Внутри транзакции строка блокируется через FOR UPDATE.
func (r *Repository) FindActiveSlot(ctx context.Context, staffID int64, date time.Time, startTime types.TimeString) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"staff_id":     staffID,
			"booking_date": date.Format(domain.DateFormat),
			"start_time":   startTime,
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveSlot - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.ServiceID,
		&booking.StaffID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Status,
		&booking.Notes,
		&booking.ClientName,
		&booking.ClientPhone,
		&booking.ServiceName,
		&booking.ServicePrice,
		&booking.StaffName,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveSlot - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetWithFilter получает записи с гибкой фильтрацией.
//
// Примеры использования:
//
//  1. Активные записи сотрудника на дату:
//     filter := domain.BookingsFilter{StaffID: &staffID, Date: &date}
//
//  2. История клиента включая отменённые:
//     filter := domain.BookingsFilter{ClientID: &clientID, IncludeCancelled: true}
//
//  3. Все записи на дату по всем сотрудникам:
//     filter := domain.BookingsFilter{Date: &date, IncludeCancelled: true}
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	if filter.Date != nil {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel отменяет запись
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	return r.updateStatus(ctx, id, domain.StatusCancelled, "Cancel")
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.updateStatus(ctx, id, status, "UpdateStatus")
}

func (r *Repository) updateStatus(ctx context.Context, id int64, status domain.BookingStatus, method string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
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

// scanBookings сканирует результаты запроса в слайс записей
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ClientID,
			&booking.ServiceID,
			&booking.StaffID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.Status,
			&booking.Notes,
			&booking.ClientName,
			&booking.ClientPhone,
			&booking.ServiceName,
			&booking.ServicePrice,
			&booking.StaffName,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation проверяет нарушение конкретного уникального индекса (SQLSTATE 23505)
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == constraint
	}
	return false
}
