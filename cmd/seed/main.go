// Seeds the database with the initial dashboard user and team.
package main

import (
	"context"
	"os"

	"ajans99-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "test@test.com"
	seedPassword = "admin123"
	seedTeamName = "Test Team"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("POSTGRES_URL")
	}
	if dbURL == "" {
		logger.Log.Error("DATABASE_URL is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Log.Error("connect failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := seed(ctx, pool); err != nil {
		logger.Log.Error("Seed process failed", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("Seed process finished. Exiting...")
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var userID int64
	err = pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, 'owner') RETURNING id`,
		seedEmail, string(passwordHash),
	).Scan(&userID)
	if err != nil {
		return err
	}
	logger.Log.Info("Initial user created.", "email", seedEmail)

	var teamID int64
	err = pool.QueryRow(ctx,
		`INSERT INTO teams (name) VALUES ($1) RETURNING id`,
		seedTeamName,
	).Scan(&teamID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO team_members (team_id, user_id, role) VALUES ($1, $2, 'owner')`,
		teamID, userID,
	)
	if err != nil {
		return err
	}
	logger.Log.Info("Initial team created.", "team", seedTeamName)

	return nil
}
