package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /api/health", handler.Health)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("POST /api/auth/register", handler.Register)
	mux.HandleFunc("POST /api/auth/login", handler.Login)
	mux.Handle("GET /api/auth/me", RequireAuth(verifier, http.HandlerFunc(handler.Me)))
}

func registerUserRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /api/users/{id}", RequireAuth(verifier, http.HandlerFunc(handler.GetUser)))
	mux.Handle("GET /api/users/{id}/fantasy-teams", RequireAuth(verifier, http.HandlerFunc(handler.ListUserFantasyTeams)))
	mux.Handle("GET /api/users/{id}/pickem-groups", RequireAuth(verifier, http.HandlerFunc(handler.ListUserPickemGroups)))
}

func registerNFLRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /api/nfl/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListNFLTeams)))
	mux.Handle("GET /api/nfl/teams/{teamID}/roster", RequireAuth(verifier, http.HandlerFunc(handler.GetTeamRoster)))
	mux.Handle("GET /api/nfl/schedule", RequireAuth(verifier, http.HandlerFunc(handler.GetSeasonSchedule)))
	mux.Handle("GET /api/nfl/schedule/{season}", RequireAuth(verifier, http.HandlerFunc(handler.GetSeasonSchedule)))
	mux.Handle("GET /api/nfl/schedule/{season}/{seasonType}/{week}", RequireAuth(verifier, http.HandlerFunc(handler.GetWeekSchedule)))
	mux.Handle("POST /api/nfl/schedule/{season}/{seasonType}/{week}/stats-sync", RequireAuth(verifier, http.HandlerFunc(handler.SyncWeekStatistics)))
	mux.Handle("GET /api/nfl/games/{gameID}", RequireAuth(verifier, http.HandlerFunc(handler.GetGame)))
	mux.Handle("GET /api/nfl/games/{gameID}/stats", RequireAuth(verifier, http.HandlerFunc(handler.GetGameStatistics)))
	mux.Handle("GET /api/nfl/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayer)))
	mux.Handle("GET /api/nfl/players/search/{query}", RequireAuth(verifier, http.HandlerFunc(handler.SearchPlayers)))
}

func registerFantasyRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /api/fantasy/leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagues)))
	mux.Handle("POST /api/fantasy/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("GET /api/fantasy/leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.GetLeague)))
	mux.Handle("GET /api/fantasy/leagues/{leagueID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagueTeams)))
	mux.Handle("GET /api/fantasy/leagues/{leagueID}/standings", RequireAuth(verifier, http.HandlerFunc(handler.LeagueStandings)))
	mux.Handle("POST /api/fantasy/leagues/{leagueID}/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinLeague)))
	mux.Handle("GET /api/fantasy/teams/{teamID}/roster", RequireAuth(verifier, http.HandlerFunc(handler.ListRoster)))
	mux.Handle("POST /api/fantasy/teams/{teamID}/roster", RequireAuth(verifier, http.HandlerFunc(handler.AddRosterPlayer)))
	mux.Handle("POST /api/fantasy/teams/{teamID}/lineup", RequireAuth(verifier, http.HandlerFunc(handler.SetLineup)))
	mux.Handle("GET /api/fantasy/teams/{teamID}/lineup/{season}/{week}", RequireAuth(verifier, http.HandlerFunc(handler.GetLineup)))
}

func registerPickemRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /api/pickem/groups", RequireAuth(verifier, http.HandlerFunc(handler.ListGroups)))
	mux.Handle("POST /api/pickem/groups", RequireAuth(verifier, http.HandlerFunc(handler.CreateGroup)))
	mux.Handle("GET /api/pickem/groups/{groupID}", RequireAuth(verifier, http.HandlerFunc(handler.GetGroup)))
	mux.Handle("POST /api/pickem/groups/{groupID}/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinGroup)))
	mux.Handle("GET /api/pickem/groups/{groupID}/members", RequireAuth(verifier, http.HandlerFunc(handler.ListMembers)))
	mux.Handle("POST /api/pickem/groups/{groupID}/picks", RequireAuth(verifier, http.HandlerFunc(handler.MakePick)))
	mux.Handle("GET /api/pickem/groups/{groupID}/picks/{week}", RequireAuth(verifier, http.HandlerFunc(handler.WeekPicks)))
	mux.Handle("GET /api/pickem/groups/{groupID}/leaderboard", RequireAuth(verifier, http.HandlerFunc(handler.GroupLeaderboard)))
}
