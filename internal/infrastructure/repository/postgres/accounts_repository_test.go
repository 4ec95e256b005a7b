package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/user"
)

func TestUserRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at")).
		WithArgs("alice", "alice@example.com", "hash").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := NewUserRepository(db).Create(context.Background(), user.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, user.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByLogin(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	created := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE (username = $1 OR email = $2) LIMIT 1")).
		WithArgs("alice@example.com", "alice@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(4), "alice", "alice@example.com", "hash", created))

	got, found, err := NewUserRepository(db).GetByLogin(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFantasyLeagueRepository_GetByID(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN users u ON u.id = fl.commissioner_id WHERE fl.id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "commissioner_id", "season_year", "max_teams", "draft_date", "created_at",
			"commissioner_name", "team_count",
		}).AddRow(int64(3), "Sunday League", int64(4), 2024, 12, nil, time.Now(), "alice", 11))

	league, found, err := NewFantasyLeagueRepository(db).GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "alice", league.CommissionerName)
	assert.Equal(t, 11, league.TeamCount)
	assert.Nil(t, league.DraftDate)
	assert.False(t, league.IsFull())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFantasyTeamRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO fantasy_teams (league_id, user_id, team_name)")).
		WithArgs(int64(3), int64(4), "Gridiron Gang").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := NewFantasyTeamRepository(db).Create(context.Background(), fantasy.Team{LeagueID: 3, UserID: 4, TeamName: "Gridiron Gang"})
	require.ErrorIs(t, err, fantasy.ErrTeamAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFantasyLineupRepository_UpsertReplacesSlots(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(
		"ON CONFLICT (team_id, season, week) DO UPDATE SET qb_player_id = EXCLUDED.qb_player_id",
	)).
		WithArgs(int64(9), 2024, 6, "qb", "rb1", "rb2", "wr1", "wr2", "te", "flex", "k", "def", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := NewFantasyLineupRepository(db).Upsert(context.Background(), fantasy.Lineup{
		TeamID: 9, Season: 2024, Week: 6,
		QB: "qb", RB1: "rb1", RB2: "rb2", WR1: "wr1", WR2: "wr2", TE: "te", Flex: "flex", K: "k", Def: "def",
	})
	require.NoError(t, err)
	assert.False(t, got.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPickemMemberRepository_AddExisting(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pickem_group_members (group_id, user_id) VALUES ($1, $2) ON CONFLICT (group_id, user_id) DO NOTHING")).
		WithArgs(int64(2), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	added, err := NewPickemMemberRepository(db).Add(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.False(t, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPickemPickRepository_ListFinalized(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM pickem_picks pp JOIN nfl_schedule_cache s ON s.id = pp.game_id " +
			"WHERE pp.group_id = $1 AND pp.user_id = $2 AND pp.season = $3 AND s.status = $4",
	)).
		WithArgs(int64(2), int64(4), 2024, "closed").
		WillReturnRows(sqlmock.NewRows([]string{"picked_team_id", "home_team_id", "away_team_id", "home_score", "away_score"}).
			AddRow("team-kc", "team-kc", "team-buf", 27, 20).
			AddRow("team-dal", "team-phi", "team-dal", 31, 10))

	picks, err := NewPickemPickRepository(db).ListFinalized(context.Background(), 2, 4, 2024)
	require.NoError(t, err)
	require.Len(t, picks, 2)

	entry := pickem.Tally(4, "alice", picks)
	assert.Equal(t, 1, entry.Wins)
	assert.Equal(t, 1, entry.Losses)
	assert.Equal(t, 50.0, entry.WinPercentage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPickemPickRepository_UpsertReturnsID(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(
		"ON CONFLICT (group_id, user_id, game_id) DO UPDATE SET picked_team_id = EXCLUDED.picked_team_id, " +
			"season = EXCLUDED.season, week = EXCLUDED.week RETURNING id, created_at",
	)).
		WithArgs(int64(2), int64(4), "game-1", "team-kc", 2024, 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(77), time.Now()))

	got, err := NewPickemPickRepository(db).Upsert(context.Background(), pickem.Pick{
		GroupID: 2, UserID: 4, GameID: "game-1", PickedTeamID: "team-kc", Season: 2024, Week: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
