package domain

import (
	"context"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Team struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Members   []TeamMember `json:"teamMembers"`
}

type TeamMember struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	TeamID int64  `json:"teamId"`
	Role   string `json:"role"`
	User   User   `json:"user"`
}

type UserRepository interface {
	// GetByID returns the user, or nil without error when no row matches.
	GetByID(ctx context.Context, id int64) (*User, error)
}

type TeamRepository interface {
	// GetForUser returns the user's team with its members, or nil without
	// error when the user belongs to no team.
	GetForUser(ctx context.Context, userID int64) (*Team, error)
}

// AccountUsecase serves the read-only dashboard endpoints. Both methods
// return nil (rendered as JSON null) when no session is present.
type AccountUsecase interface {
	CurrentUser(ctx context.Context) (*User, error)
	CurrentTeam(ctx context.Context) (*Team, error)
}
