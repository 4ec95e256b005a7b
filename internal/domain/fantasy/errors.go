package fantasy

import "errors"

// ErrTeamAlreadyExists is returned when a user already owns a team in the league.
var ErrTeamAlreadyExists = errors.New("fantasy team already exists")
