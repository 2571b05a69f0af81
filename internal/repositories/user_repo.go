package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/faraaz0786/pglife/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	prefsJSON, err := json.Marshal(user.Preferences)
	if err != nil {
		return models.User{}, err
	}

	query := `
INSERT INTO users (name, email, password_hash, role, preferences, created_at)
VALUES (?, ?, ?, ?, ?, NOW())
`
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Email, user.Password, user.Role, string(prefsJSON),
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.User{}, models.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	user.Password = ""
	return user, nil
}

func scanUser(row interface{ Scan(...interface{}) error }) (models.User, error) {
	var u models.User
	var prefsJSON sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &prefsJSON, &u.CreatedAt, &updatedAt)
	if err != nil {
		return models.User{}, err
	}
	if prefsJSON.Valid && prefsJSON.String != "" {
		if err := json.Unmarshal([]byte(prefsJSON.String), &u.Preferences); err != nil {
			return models.User{}, fmt.Errorf("failed to decode preferences json: %w", err)
		}
	}
	if updatedAt.Valid {
		u.UpdatedAt = &updatedAt.Time
	}
	return u, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `SELECT id, name, email, role, preferences, created_at, updated_at FROM users WHERE id = ?`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetUserByEmail also returns the password hash for credential checks.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT id, name, email, password_hash, role, preferences, created_at FROM users WHERE email = ?`
	var u models.User
	var prefsJSON sql.NullString
	err := r.DB.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &prefsJSON, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if prefsJSON.Valid && prefsJSON.String != "" {
		if err := json.Unmarshal([]byte(prefsJSON.String), &u.Preferences); err != nil {
			return models.User{}, fmt.Errorf("failed to decode preferences json: %w", err)
		}
	}
	return u, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `UPDATE users SET name = ?, updated_at = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, user.Name, time.Now(), user.ID)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, user.ID)
}

// GetPreferences loads a user's saved preference profile.
func (r *UserRepository) GetPreferences(ctx context.Context, userID int) (models.Preferences, error) {
	u, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return models.Preferences{}, err
	}
	return u.Preferences, nil
}

func (r *UserRepository) UpdatePreferences(ctx context.Context, userID int, prefs models.Preferences) error {
	prefs.Amenities = models.NormalizeAmenities(prefs.Amenities)
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET preferences = ?, updated_at = ? WHERE id = ?`,
		string(prefsJSON), time.Now(), userID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetSession(ctx context.Context, session models.Session) error {
	query := `
INSERT INTO sessions (user_id, role, refresh_token, expires_at)
VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)
`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `SELECT user_id, role, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`
	var s models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(&s.UserID, &s.Role, &s.RefreshToken, &s.ExpiresAt)
	if err == sql.ErrNoRows {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}
