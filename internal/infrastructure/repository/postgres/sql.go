package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	qb "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/querybuilder"
)

const (
	upsertChunkSize     = 200
	uniqueViolationCode = "23505"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

// execUpsert writes rows in multi-row statements of upsertChunkSize. Rows
// sharing a conflict key collapse to the last one. Chunks are not wrapped in
// a transaction; a failed chunk leaves earlier chunks written and the caller
// retries the whole batch.
func execUpsert(ctx context.Context, db *sqlx.DB, table string, conflict []string, rows []any) error {
	if len(rows) == 0 {
		return nil
	}
	cols, err := qb.ModelColumns(rows[0])
	if err != nil {
		return fmt.Errorf("resolve %s columns: %w", table, err)
	}
	rows, err = dedupeByConflict(rows, conflict)
	if err != nil {
		return fmt.Errorf("dedupe %s rows: %w", table, err)
	}
	suffix := qb.UpsertSuffix(conflict, cols)

	for start := 0; start < len(rows); start += upsertChunkSize {
		end := min(start+upsertChunkSize, len(rows))
		query, args, err := qb.InsertModels(table, rows[start:end], suffix)
		if err != nil {
			return fmt.Errorf("build upsert %s query: %w", table, err)
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert %s: %w", table, err)
		}
	}
	return nil
}

// dedupeByConflict keeps the first-seen position of every key but the last
// row's values. ON CONFLICT DO UPDATE cannot touch one row twice in a statement.
func dedupeByConflict(rows []any, conflict []string) ([]any, error) {
	index := make(map[string]int, len(rows))
	out := make([]any, 0, len(rows))
	for i, row := range rows {
		key, err := qb.ModelValues(row, conflict...)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		k := fmt.Sprintf("%#v", key)
		if at, ok := index[k]; ok {
			out[at] = row
			continue
		}
		index[k] = len(out)
		out = append(out, row)
	}
	return out, nil
}

func timeOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

func intPtrToNull(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func timePtrToNull(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: v.UTC(), Valid: true}
}

func nullToTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	out := v.Time
	return &out
}
