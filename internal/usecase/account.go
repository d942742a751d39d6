package usecase

import (
	"context"

	"ajans99-backend/internal/domain"
)

type accountUsecase struct {
	users domain.UserRepository
	teams domain.TeamRepository
}

func NewAccountUsecase(users domain.UserRepository, teams domain.TeamRepository) domain.AccountUsecase {
	return &accountUsecase{users: users, teams: teams}
}

// CurrentUser returns the session user, or nil when the request carries no
// valid session. An unauthenticated dashboard is not an error.
func (uc *accountUsecase) CurrentUser(ctx context.Context) (*domain.User, error) {
	id, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok {
		return nil, nil
	}
	return uc.users.GetByID(ctx, id)
}

// CurrentTeam returns the session user's team with members, or nil.
func (uc *accountUsecase) CurrentTeam(ctx context.Context) (*domain.Team, error) {
	id, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok {
		return nil, nil
	}
	return uc.teams.GetForUser(ctx, id)
}
