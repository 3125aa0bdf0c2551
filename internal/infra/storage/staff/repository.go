package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SC-SchedulingService/internal/domain"
	"github.com/m04kA/SC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SC-SchedulingService/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"user_id",
	"name",
	"specialization",
	"work_start",
	"work_end",
	"slot_duration_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanStaffMember(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByUserID получает сотрудника по ID учётной записи пользователя.
// Используется self-service маршрутами тренеров и массажистов.
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanStaffMember(executor.QueryRowContext(ctx, query, args...), "GetByUserID")
}

// List возвращает всех сотрудников, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)
	for rows.Next() {
		member, err := r.scanStaffRow(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// UpdateSchedule частично обновляет поля расписания сотрудника.
// Обновляются только заданные поля, остальные остаются без изменений.
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, update domain.ScheduleUpdate) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("staff_members").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.WorkStart != nil {
		updateBuilder = updateBuilder.Set("work_start", *update.WorkStart)
	}
	if update.WorkEnd != nil {
		updateBuilder = updateBuilder.Set("work_end", *update.WorkEnd)
	}
	if update.SlotDurationMinutes != nil {
		updateBuilder = updateBuilder.Set("slot_duration_minutes", *update.SlotDurationMinutes)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrStaffNotFound
	}

	return r.GetByID(ctx, id)
}

// scanStaffMember сканирует одну строку из QueryRowContext
func (r *Repository) scanStaffMember(row *sql.Row, method string) (*domain.StaffMember, error) {
	var member domain.StaffMember
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&member.ID,
		&member.UserID,
		&member.Name,
		&member.Specialization,
		&member.WorkStart,
		&member.WorkEnd,
		&member.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan staff member: %v", ErrScanRow, method, err)
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return &member, nil
}

// scanStaffRow сканирует строку из rows
func (r *Repository) scanStaffRow(rows *sql.Rows) (*domain.StaffMember, error) {
	var member domain.StaffMember
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&member.ID,
		&member.UserID,
		&member.Name,
		&member.Specialization,
		&member.WorkStart,
		&member.WorkEnd,
		&member.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanStaffRow - scan row: %v", ErrScanRow, err)
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return &member, nil
}
