package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/tla-registrar/internal/model"
)

const (
	eventsByNameQuery = `
SELECT
	name,
	kind,
	account,
	amount,
	at
FROM ` + eventsTable + `
WHERE name = ?
ORDER BY at ASC
LIMIT ?`

	eventsByAccountQuery = `
SELECT
	name,
	kind,
	account,
	amount,
	at
FROM ` + eventsTable + `
WHERE account = ?
ORDER BY at DESC
LIMIT ?`
)

// EventsByName returns the oldest limit events recorded for name.
func (r *Repository) EventsByName(ctx context.Context, name model.Name, limit uint64) (events []model.Event, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("events_by_name", err, start)
	}()

	rows, err := r.conn.Query(ctx, eventsByNameQuery, string(name), limit)
	if err != nil {
		return nil, fmt.Errorf("query events by name: %w", err)
	}
	return scanEvents(rows)
}

// EventsByAccount returns the latest limit events that involve account.
func (r *Repository) EventsByAccount(ctx context.Context, account model.AccountID, limit uint64) (events []model.Event, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("events_by_account", err, start)
	}()

	rows, err := r.conn.Query(ctx, eventsByAccountQuery, string(account), limit)
	if err != nil {
		return nil, fmt.Errorf("query events by account: %w", err)
	}
	return scanEvents(rows)
}

func scanEvents(rows driver.Rows) (events []model.Event, err error) {
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			name, kind, account string
			amount              uint64
			at                  time.Time
		)
		if err = rows.Scan(&name, &kind, &account, &amount, &at); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, model.Event{
			Name:    model.Name(name),
			Kind:    model.EventKind(kind),
			Account: model.AccountID(account),
			Amount:  model.Amount(amount),
			At:      at.UTC(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
