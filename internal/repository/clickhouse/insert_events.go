package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
)

const insertEventsQuery = `
INSERT INTO ` + eventsTable + ` (
	name,
	kind,
	account,
	amount,
	at
) VALUES`

// InsertEvents appends events to the history table.
func (r *Repository) InsertEvents(ctx context.Context, events []model.Event) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}
	defer func() {
		if !batch.IsSent() {
			_ = batch.Abort()
		}
	}()

	for _, e := range events {
		if err = batch.Append(
			string(e.Name),
			string(e.Kind),
			string(e.Account),
			uint64(e.Amount),
			e.At,
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
