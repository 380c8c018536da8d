package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expensex/expensex-api/models"
)

// UserStore persists directory users. Queries use $n placeholders, which both
// lib/pq and modernc sqlite accept.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `user_id, user_name, email_address, password, mobile_no, profile_image, created, modified`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.DirectoryUser, error) {
	var (
		u            models.DirectoryUser
		profileImage sql.NullString
	)
	err := row.Scan(
		&u.UserID,
		&u.UserName,
		&u.EmailAddress,
		&u.Password,
		&u.MobileNo,
		&profileImage,
		&u.Created,
		&u.Modified,
	)
	if err != nil {
		return nil, err
	}
	if profileImage.Valid {
		img := profileImage.String
		u.ProfileImage = &img
	}
	return &u, nil
}

// List returns every user, newest first.
func (s *UserStore) List(ctx context.Context) ([]models.DirectoryUser, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created DESC, user_id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []models.DirectoryUser{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// FindByID returns ErrUserNotFound when no row matches.
func (s *UserStore) FindByID(ctx context.Context, id int64) (*models.DirectoryUser, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE user_id = $1
	`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return u, nil
}

// FindByEmail matches the email exactly (case-sensitive).
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.DirectoryUser, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email_address = $1
		LIMIT 1
	`, email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// Create inserts u and fills in its generated id.
func (s *UserStore) Create(ctx context.Context, u *models.DirectoryUser) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (user_name, email_address, password, mobile_no, profile_image, created, modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id
	`, u.UserName, u.EmailAddress, u.Password, u.MobileNo, u.ProfileImage, u.Created, u.Modified).Scan(&u.UserID)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update writes the mutable fields of u.
func (s *UserStore) Update(ctx context.Context, u *models.DirectoryUser) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET user_name = $1, email_address = $2, mobile_no = $3, modified = $4
		WHERE user_id = $5
	`, u.UserName, u.EmailAddress, u.MobileNo, u.Modified, u.UserID)
	if err != nil {
		return fmt.Errorf("update user %d: %w", u.UserID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}
	return nil
}
