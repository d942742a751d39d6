package postgres

import (
	"context"
	"errors"

	"ajans99-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type teamRepo struct {
	db *pgxpool.Pool
}

func NewTeamRepository(db *pgxpool.Pool) domain.TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) GetForUser(ctx context.Context, userID int64) (*domain.Team, error) {
	query := `SELECT t.id, t.name, t.created_at, t.updated_at
              FROM teams t
              JOIN team_members tm ON tm.team_id = t.id
              WHERE tm.user_id = $1
              LIMIT 1`
	var team domain.Team
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&team.ID, &team.Name, &team.CreatedAt, &team.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	members, err := r.listMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members
	return &team, nil
}

func (r *teamRepo) listMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error) {
	query := `SELECT tm.id, tm.user_id, tm.team_id, tm.role,
                     u.id, u.name, u.email, u.role, u.created_at, u.updated_at
              FROM team_members tm
              JOIN users u ON u.id = tm.user_id
              WHERE tm.team_id = $1
              ORDER BY tm.id`
	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.TeamMember{}
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.TeamID, &m.Role,
			&m.User.ID, &m.User.Name, &m.User.Email, &m.User.Role, &m.User.CreatedAt, &m.User.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
