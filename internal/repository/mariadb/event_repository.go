package mariadb

import (
	"context"
	"database/sql"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/querycatalog"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

const eventColumns = "id, title, location, starts_at, ends_at, is_active, created_at"

type EventRepository struct {
	db *sql.DB
}

// compile-time check: *EventRepository must satisfy port.EventRepository
var _ port.EventRepository = (*EventRepository)(nil)

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	logger.Debugf(ctx, "creating database record for event #%s...", e.ID)

	const query = `
      INSERT INTO events
        (id, title, location, starts_at, ends_at, is_active, created_at)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Title, e.Location,
		e.StartsAt, e.EndsAt, e.IsActive, e.CreatedAt,
	)
	return err
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Debugf(ctx, "deleting database record for event #%s...", id)

	res, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *EventRepository) ListActive(ctx context.Context) ([]model.Event, error) {
	query, args := querycatalog.EventsActive.SQL(eventColumns)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Location, &e.StartsAt, &e.EndsAt, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}
