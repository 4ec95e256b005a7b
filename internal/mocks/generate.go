package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LeagueRepository --dir ../domain/fantasy --output domain/fantasy --outpkg fantasymock --filename league_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TeamRepository --dir ../domain/fantasy --output domain/fantasy --outpkg fantasymock --filename team_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GroupRepository --dir ../domain/pickem --output domain/pickem --outpkg pickemmock --filename group_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MemberRepository --dir ../domain/pickem --output domain/pickem --outpkg pickemmock --filename member_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PickRepository --dir ../domain/pickem --output domain/pickem --outpkg pickemmock --filename pick_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/user --output domain/user --outpkg usermock --filename repository_mock.go
