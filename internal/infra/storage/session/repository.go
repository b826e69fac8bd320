package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/pkg/dbmetrics"
	"github.com/amswalks/AWT-BookingFunnel/pkg/psqlbuilder"
	"github.com/amswalks/AWT-BookingFunnel/pkg/ptr"
	"github.com/amswalks/AWT-BookingFunnel/pkg/types"
)

const table = "wizard_sessions"

var columns = []string{
	"id",
	"step",
	"tour_date",
	"guests",
	"time_slots_shown",
	"selected_time",
	"name",
	"email",
	"phone",
	"country_id",
	"has_selected_over6",
	"private_guests",
	"booking_public_id",
	"existing_date",
	"existing_time",
	"existing_persons",
	"existing_booking_code",
	"existing_customer_name",
	"existing_customer_email",
	"existing_customer_phone",
	"existing_country",
	"created_at",
	"updated_at",
}

// Repository репозиторий сессий визарда бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию визарда
func (r *Repository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"step",
			"guests",
			"created_at",
			"updated_at",
		).
		Values(
			s.ID,
			string(s.Step),
			s.Guests,
			s.CreatedAt,
			s.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает сессию по идентификатору
// Если в контексте передана активная транзакция, запрос выполняется в ней
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
		}
		return nil, err
	}
	return session, nil
}

// Update сохраняет текущее состояние сессии (полная перезапись строки)
func (r *Repository) Update(ctx context.Context, s *domain.Session) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var selectedTime *string
	if s.SelectedTime != nil {
		selectedTime = ptr.Ptr(s.SelectedTime.String())
	}

	builder := psqlbuilder.Update(table).
		Set("step", string(s.Step)).
		Set("tour_date", s.TourDate).
		Set("guests", s.Guests).
		Set("time_slots_shown", s.TimeSlotsShown).
		Set("selected_time", selectedTime).
		Set("name", s.Name).
		Set("email", s.Email).
		Set("phone", s.Phone).
		Set("country_id", s.CountryID).
		Set("has_selected_over6", s.HasSelectedOver6).
		Set("private_guests", s.PrivateGuests).
		Set("booking_public_id", s.BookingPublicID).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"id": s.ID})

	if s.Existing != nil {
		builder = builder.
			Set("existing_date", s.Existing.Date).
			Set("existing_time", s.Existing.Time).
			Set("existing_persons", s.Existing.Persons).
			Set("existing_booking_code", s.Existing.BookingCode).
			Set("existing_customer_name", s.Existing.CustomerName).
			Set("existing_customer_email", s.Existing.CustomerEmail).
			Set("existing_customer_phone", s.Existing.CustomerPhone).
			Set("existing_country", s.Existing.Country)
	} else {
		builder = builder.
			Set("existing_date", nil).
			Set("existing_time", nil).
			Set("existing_persons", nil).
			Set("existing_booking_code", nil).
			Set("existing_customer_name", nil).
			Set("existing_customer_email", nil).
			Set("existing_customer_phone", nil).
			Set("existing_country", nil)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrSessionNotFound, s.ID)
	}
	return nil
}

// Delete удаляет сессию (закрытие визарда)
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
	}
	return nil
}

// DeleteStale удаляет брошенные сессии старше порога
// Вызывается фоновым janitor'ом из main
func (r *Repository) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Lt{"updated_at": olderThan}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteStale - rows affected: %v", ErrExecQuery, err)
	}
	return affected, nil
}

// scanSession сканирует строку в доменную модель сессии
func scanSession(row *sql.Row) (*domain.Session, error) {
	var (
		s             domain.Session
		step          string
		tourDate      sql.NullTime
		selectedTime  sql.NullString
		bookingID     sql.NullString
		exDate        sql.NullString
		exTime        sql.NullString
		exPersons     sql.NullInt64
		exCode        sql.NullString
		exName        sql.NullString
		exEmail       sql.NullString
		exPhone       sql.NullString
		exCountry     sql.NullString
	)

	err := row.Scan(
		&s.ID,
		&step,
		&tourDate,
		&s.Guests,
		&s.TimeSlotsShown,
		&selectedTime,
		&s.Name,
		&s.Email,
		&s.Phone,
		&s.CountryID,
		&s.HasSelectedOver6,
		&s.PrivateGuests,
		&bookingID,
		&exDate,
		&exTime,
		&exPersons,
		&exCode,
		&exName,
		&exEmail,
		&exPhone,
		&exCountry,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	s.Step = domain.WizardStep(step)
	if tourDate.Valid {
		d := tourDate.Time
		s.TourDate = &d
	}
	if selectedTime.Valid {
		t, err := types.NewTimeStringFromString(selectedTime.String)
		if err != nil {
			return nil, fmt.Errorf("%w: selected_time: %v", ErrScanRow, err)
		}
		s.SelectedTime = &t
	}
	if bookingID.Valid {
		s.BookingPublicID = ptr.Ptr(bookingID.String)
	}
	if exCode.Valid {
		s.Existing = &domain.ExistingBooking{
			Date:          exDate.String,
			Time:          exTime.String,
			Persons:       int(exPersons.Int64),
			BookingCode:   exCode.String,
			CustomerName:  exName.String,
			CustomerEmail: exEmail.String,
			CustomerPhone: exPhone.String,
			Country:       exCountry.String,
		}
	}

	return &s, nil
}
