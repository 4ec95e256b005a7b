package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflteam"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	if !isUniqueViolation(fmt.Errorf("insert user: %w", &pq.Error{Code: "23505"})) {
		t.Fatalf("expected wrapped unique violation to match")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatalf("foreign key violation must not match")
	}
	if isUniqueViolation(sql.ErrNoRows) {
		t.Fatalf("no rows must not match")
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to match")
	}
}

func TestNullableHelpers(t *testing.T) {
	t.Parallel()

	score := 21
	if got := nullToIntPtr(intPtrToNull(&score)); got == nil || *got != 21 {
		t.Fatalf("unexpected score round trip: %v", got)
	}
	if got := nullToIntPtr(intPtrToNull(nil)); got != nil {
		t.Fatalf("expected nil score, got %v", *got)
	}

	draft := time.Date(2024, 8, 30, 19, 0, 0, 0, time.UTC)
	if got := nullToTimePtr(timePtrToNull(&draft)); got == nil || !got.Equal(draft) {
		t.Fatalf("unexpected draft date round trip: %v", got)
	}
}

func TestExecUpsert_DuplicateKeyKeepsLastRow(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	updated := time.Date(2024, 10, 7, 4, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO nfl_teams_cache (id, name, market, alias, conference, division, venue_name, updated_at) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8), ($9, $10, $11, $12, $13, $14, $15, $16) ON CONFLICT (id)",
	)).
		WithArgs(
			"team-kc", "Chiefs", "Kansas City", "KC", "AFC", "AFC West", "GEHA Field at Arrowhead Stadium", updated,
			"team-buf", "Bills", "Buffalo", "BUF", "AFC", "AFC East", "Highmark Stadium", updated,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := NewNFLTeamRepository(db).UpsertTeams(context.Background(), []nflteam.Team{
		{ID: "team-kc", Name: "Chiefs", Market: "Kansas City", Alias: "KC", Conference: "AFC", Division: "AFC West", VenueName: "Arrowhead Stadium", UpdatedAt: updated},
		{ID: "team-buf", Name: "Bills", Market: "Buffalo", Alias: "BUF", Conference: "AFC", Division: "AFC East", VenueName: "Highmark Stadium", UpdatedAt: updated},
		{ID: "team-kc", Name: "Chiefs", Market: "Kansas City", Alias: "KC", Conference: "AFC", Division: "AFC West", VenueName: "GEHA Field at Arrowhead Stadium", UpdatedAt: updated},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDedupeByConflict_CompositeKey(t *testing.T) {
	t.Parallel()

	rows := []any{
		playerStatsTableModel{PlayerID: "p1", GameID: "g1", PassingYards: 100},
		playerStatsTableModel{PlayerID: "p1", GameID: "g2", PassingYards: 200},
		playerStatsTableModel{PlayerID: "p1", GameID: "g1", PassingYards: 300},
	}
	got, err := dedupeByConflict(rows, []string{"player_id", "game_id"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 300, got[0].(playerStatsTableModel).PassingYards)
	assert.Equal(t, "g2", got[1].(playerStatsTableModel).GameID)

	_, err = dedupeByConflict(rows, []string{"missing"})
	assert.Error(t, err)
}
