package user

import (
	"context"
	"database/sql"
	"errors"

	"gearmart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, name, email, password string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams, passwordHash string) error
	List(ctx context.Context) ([]User, error)
	Approve(ctx context.Context, id int64) error
	SetResetToken(ctx context.Context, id int64, token string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, password string) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, role, is_approved)
		VALUES ($1, $2, $3, 'user', FALSE)
		RETURNING id, name, email, password, role, is_approved, created_at, updated_at
	`, name, email, password).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.IsApproved, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role, is_approved, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.IsApproved, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role, is_approved,
		       country, date_of_birth, description, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.IsApproved,
			&u.Country, &u.DateOfBirth, &u.Description, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}

func (r *repository) UpdateProfile(ctx context.Context, params UpdateProfileParams, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET name = $1, email = $2, country = $3, date_of_birth = $4,
		    description = $5, password = $6, updated_at = NOW()
		WHERE id = $7
	`, params.Name, params.Email, params.Country, params.DateOfBirth,
		params.Description, passwordHash, params.UserID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, role, is_approved
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.IsApproved); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *repository) Approve(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_approved = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) SetResetToken(ctx context.Context, id int64, token string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = $1 WHERE id = $2`, token, id)
	return err
}

func (r *repository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password = $1, reset_token = NULL, updated_at = NOW() WHERE id = $2`,
		passwordHash, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
