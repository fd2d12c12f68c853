package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"events-calendar/internal/domain/events"
)

const uniqueViolation = "23505"

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

const selectColumns = `
	SELECT id, event_date, title, body, created_at, updated_at
	FROM calendar_events
`

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendar_events (id, event_date, title, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		e.ID,
		e.Date,
		e.Title,
		e.Text,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return mapErr(err)
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.Event{}, events.ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
}

func (r *EventsRepo) GetByDate(ctx context.Context, date string) (events.Event, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectColumns+` WHERE event_date = $1`, date))
}

func (r *EventsRepo) List(ctx context.Context, filter events.ListFilter) ([]events.Event, error) {
	sb := strings.Builder{}
	sb.WriteString(selectColumns)

	args := []any{}
	if filter.Month != "" {
		args = append(args, filter.Month)
		sb.WriteString(fmt.Sprintf(" WHERE to_char(event_date, 'YYYY-MM') = $%d", len(args)))
	}

	sb.WriteString(" ORDER BY seq ASC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *EventsRepo) Update(ctx context.Context, e events.Event) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calendar_events
		SET event_date = $2, title = $3, body = $4, updated_at = $5
		WHERE id = $1
	`, e.ID, e.Date, e.Title, e.Text, e.UpdatedAt)
	if err != nil {
		return mapErr(err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *EventsRepo) scanOne(row *sql.Row) (events.Event, error) {
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return events.Event{}, events.ErrNotFound
	}
	return e, err
}

func scanEvent(s scanner) (events.Event, error) {
	var e events.Event
	var day time.Time
	if err := s.Scan(&e.ID, &day, &e.Title, &e.Text, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return events.Event{}, err
	}
	e.Date = day.Format(events.DateLayout)
	return e, nil
}

// mapErr traduce la violación de UNIQUE(event_date) al error de dominio.
func mapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", events.ErrDateTaken, pgErr.ConstraintName)
	}
	return err
}
