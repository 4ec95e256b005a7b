package httpapi

import (
	"time"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/fantasy"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflplayer"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflteam"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/pickem"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/playerstats"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/user"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
)

type userDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

type authDTO struct {
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expires_at"`
	User      userDTO `json:"user"`
}

type nflTeamDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Market     string `json:"market"`
	Alias      string `json:"alias"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
	VenueName  string `json:"venue_name"`
}

type nflPlayerDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	TeamID       string `json:"team_id"`
	JerseyNumber string `json:"jersey_number"`
}

type statLineDTO struct {
	PassingYards   int `json:"passing_yards"`
	PassingTDs     int `json:"passing_tds"`
	PassingInts    int `json:"passing_ints"`
	RushingYards   int `json:"rushing_yards"`
	RushingTDs     int `json:"rushing_tds"`
	ReceivingYards int `json:"receiving_yards"`
	ReceivingTDs   int `json:"receiving_tds"`
	Receptions     int `json:"receptions"`
	FumblesLost    int `json:"fumbles_lost"`
}

type scoredPlayerDTO struct {
	PlayerID      string      `json:"player_id"`
	Name          string      `json:"name"`
	Position      string      `json:"position"`
	Side          string      `json:"side"`
	Stats         statLineDTO `json:"stats"`
	FantasyPoints float64     `json:"fantasy_points"`
}

type gameStatisticsDTO struct {
	GameID     string            `json:"game_id"`
	Season     int               `json:"season"`
	Week       int               `json:"week"`
	Statistics map[string]any    `json:"statistics"`
	Players    []scoredPlayerDTO `json:"players"`
}

type leagueDTO struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	CommissionerID   int64  `json:"commissioner_id"`
	CommissionerName string `json:"commissioner_name,omitempty"`
	SeasonYear       int    `json:"season_year"`
	MaxTeams         int    `json:"max_teams"`
	DraftDate        string `json:"draft_date,omitempty"`
	TeamCount        int    `json:"team_count"`
	CreatedAt        string `json:"created_at,omitempty"`
}

type fantasyTeamDTO struct {
	ID         int64  `json:"id"`
	LeagueID   int64  `json:"league_id"`
	LeagueName string `json:"league_name,omitempty"`
	UserID     int64  `json:"user_id"`
	OwnerName  string `json:"owner_name,omitempty"`
	TeamName   string `json:"team_name"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type rosterEntryDTO struct {
	ID         int64  `json:"id"`
	TeamID     int64  `json:"team_id"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Position   string `json:"position"`
	TeamAbbr   string `json:"team_abbr,omitempty"`
	AddedAt    string `json:"added_at,omitempty"`
}

type lineupDTO struct {
	TeamID    int64  `json:"team_id"`
	Season    int    `json:"season"`
	Week      int    `json:"week"`
	QB        string `json:"qb"`
	RB1       string `json:"rb1"`
	RB2       string `json:"rb2"`
	WR1       string `json:"wr1"`
	WR2       string `json:"wr2"`
	TE        string `json:"te"`
	Flex      string `json:"flex"`
	K         string `json:"k"`
	Def       string `json:"def"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type standingDTO struct {
	Rank        int     `json:"rank"`
	TeamID      int64   `json:"team_id"`
	TeamName    string  `json:"team_name"`
	UserID      int64   `json:"user_id"`
	OwnerName   string  `json:"owner_name,omitempty"`
	TotalPoints float64 `json:"total_points"`
}

type groupDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	AdminID     int64  `json:"admin_id"`
	AdminName   string `json:"admin_name,omitempty"`
	SeasonYear  int    `json:"season_year"`
	MemberCount int    `json:"member_count"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type memberDTO struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	JoinedAt string `json:"joined_at,omitempty"`
}

type pickDTO struct {
	ID           int64  `json:"id"`
	GroupID      int64  `json:"group_id"`
	UserID       int64  `json:"user_id"`
	GameID       string `json:"game_id"`
	PickedTeamID string `json:"picked_team_id"`
	Season       int    `json:"season"`
	Week         int    `json:"week"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type pickWithGameDTO struct {
	pickDTO
	Scheduled  string `json:"scheduled,omitempty"`
	HomeTeamID string `json:"home_team_id,omitempty"`
	AwayTeamID string `json:"away_team_id,omitempty"`
	Status     string `json:"status,omitempty"`
	HomeScore  *int   `json:"home_score"`
	AwayScore  *int   `json:"away_score"`
}

type leaderboardEntryDTO struct {
	Rank          int     `json:"rank"`
	UserID        int64   `json:"user_id"`
	Username      string  `json:"username"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	TotalPicks    int     `json:"total_picks"`
	WinPercentage float64 `json:"win_percentage"`
}

type messageDTO struct {
	Message string `json:"message"`
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func formatOptionalTime(v *time.Time) string {
	if v == nil {
		return ""
	}
	return formatTime(*v)
}

func userToDTO(v user.User) userDTO {
	return userDTO{ID: v.ID, Username: v.Username, Email: v.Email, CreatedAt: formatTime(v.CreatedAt)}
}

func authToDTO(v usecase.AuthResult) authDTO {
	return authDTO{Token: v.Token, ExpiresAt: formatTime(v.ExpiresAt), User: userToDTO(v.User)}
}

func nflTeamToDTO(v nflteam.Team) nflTeamDTO {
	return nflTeamDTO{
		ID:         v.ID,
		Name:       v.Name,
		Market:     v.Market,
		Alias:      v.Alias,
		Conference: v.Conference,
		Division:   v.Division,
		VenueName:  v.VenueName,
	}
}

func nflPlayerToDTO(v nflplayer.Player) nflPlayerDTO {
	return nflPlayerDTO{ID: v.ID, Name: v.Name, Position: v.Position, TeamID: v.TeamID, JerseyNumber: v.JerseyNumber}
}

func statLineToDTO(v playerstats.StatLine) statLineDTO {
	return statLineDTO{
		PassingYards:   v.PassingYards,
		PassingTDs:     v.PassingTDs,
		PassingInts:    v.PassingInts,
		RushingYards:   v.RushingYards,
		RushingTDs:     v.RushingTDs,
		ReceivingYards: v.ReceivingYards,
		ReceivingTDs:   v.ReceivingTDs,
		Receptions:     v.Receptions,
		FumblesLost:    v.FumblesLost,
	}
}

func gameStatisticsToDTO(v usecase.GameStatisticsResult) gameStatisticsDTO {
	players := make([]scoredPlayerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, scoredPlayerDTO{
			PlayerID:      p.PlayerID,
			Name:          p.Name,
			Position:      p.Position,
			Side:          p.Side,
			Stats:         statLineToDTO(p.Line),
			FantasyPoints: p.FantasyPoints,
		})
	}
	return gameStatisticsDTO{
		GameID:     v.GameID,
		Season:     v.Season,
		Week:       v.Week,
		Statistics: v.Statistics,
		Players:    players,
	}
}

func leagueToDTO(v fantasy.League) leagueDTO {
	return leagueDTO{
		ID:               v.ID,
		Name:             v.Name,
		CommissionerID:   v.CommissionerID,
		CommissionerName: v.CommissionerName,
		SeasonYear:       v.SeasonYear,
		MaxTeams:         v.MaxTeams,
		DraftDate:        formatOptionalTime(v.DraftDate),
		TeamCount:        v.TeamCount,
		CreatedAt:        formatTime(v.CreatedAt),
	}
}

func fantasyTeamToDTO(v fantasy.Team) fantasyTeamDTO {
	return fantasyTeamDTO{
		ID:         v.ID,
		LeagueID:   v.LeagueID,
		LeagueName: v.LeagueName,
		UserID:     v.UserID,
		OwnerName:  v.OwnerName,
		TeamName:   v.TeamName,
		CreatedAt:  formatTime(v.CreatedAt),
	}
}

func rosterEntryToDTO(v fantasy.RosterEntry) rosterEntryDTO {
	return rosterEntryDTO{
		ID:         v.ID,
		TeamID:     v.TeamID,
		PlayerID:   v.PlayerID,
		PlayerName: v.PlayerName,
		Position:   v.Position,
		TeamAbbr:   v.TeamAbbr,
		AddedAt:    formatTime(v.AddedAt),
	}
}

func lineupToDTO(v fantasy.Lineup) lineupDTO {
	return lineupDTO{
		TeamID:    v.TeamID,
		Season:    v.Season,
		Week:      v.Week,
		QB:        v.QB,
		RB1:       v.RB1,
		RB2:       v.RB2,
		WR1:       v.WR1,
		WR2:       v.WR2,
		TE:        v.TE,
		Flex:      v.Flex,
		K:         v.K,
		Def:       v.Def,
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func groupToDTO(v pickem.Group) groupDTO {
	return groupDTO{
		ID:          v.ID,
		Name:        v.Name,
		AdminID:     v.AdminID,
		AdminName:   v.AdminName,
		SeasonYear:  v.SeasonYear,
		MemberCount: v.MemberCount,
		CreatedAt:   formatTime(v.CreatedAt),
	}
}

func pickToDTO(v pickem.Pick) pickDTO {
	return pickDTO{
		ID:           v.ID,
		GroupID:      v.GroupID,
		UserID:       v.UserID,
		GameID:       v.GameID,
		PickedTeamID: v.PickedTeamID,
		Season:       v.Season,
		Week:         v.Week,
		CreatedAt:    formatTime(v.CreatedAt),
	}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
