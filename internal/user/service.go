package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"gearmart-be/internal/logger"

	"go.uber.org/zap"
)

// Mailer delivers password reset links. Delivery is an external collaborator;
// implementations must not block the request longer than the context allows.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

type Service interface {
	Register(ctx context.Context, name, email, password string) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetProfile(ctx context.Context, userID int64) (User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) error
	ListUsers(ctx context.Context) ([]User, error)
	ApproveUser(ctx context.Context, userID int64) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type service struct {
	repo   Repository
	mailer Mailer
}

func NewService(repo Repository, mailer Mailer) Service {
	return &service{repo: repo, mailer: mailer}
}

func (s *service) Register(ctx context.Context, name, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	if name == "" || email == "" || password == "" {
		return "", User{}, fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", User{}, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if len(password) < 4 {
		return "", User{}, fmt.Errorf("%w: password must be at least 4 characters long", ErrInvalidInput)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, name, email, hashed)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return "", User{}, ErrEmailExists
		}
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int64("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("user registered, waiting for admin approval",
		zap.Int64("user_id", u.ID),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	if email == "" || password == "" {
		return "", User{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	if u.Role == RoleUser && !u.IsApproved {
		return "", User{}, ErrNotApproved
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), email)
	return token, u, err
}

func (s *service) GetProfile(ctx context.Context, userID int64) (User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) error {
	log := logger.FromCtx(ctx)

	if params.Name == "" || params.Email == "" {
		return fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if params.DateOfBirth != nil && age(*params.DateOfBirth) < 18 {
		return fmt.Errorf("%w: user must be at least 18 years old", ErrInvalidInput)
	}

	u, err := s.repo.FindByID(ctx, params.UserID)
	if err != nil {
		return err
	}

	passwordHash := u.Password
	if params.NewPassword != "" {
		if !CheckPasswordHash(params.OldPassword, u.Password) {
			return fmt.Errorf("%w: old password is incorrect", ErrInvalidInput)
		}
		passwordHash, err = HashPassword(params.NewPassword)
		if err != nil {
			log.Error("failed to hash new password", zap.Error(err))
			return err
		}
	}

	return s.repo.UpdateProfile(ctx, params, passwordHash)
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) ApproveUser(ctx context.Context, userID int64) error {
	if err := s.repo.Approve(ctx, userID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("user approved", zap.Int64("user_id", userID))
	return nil
}

func (s *service) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := GenerateResetToken(u.ID)
	if err != nil {
		return err
	}

	if err := s.repo.SetResetToken(ctx, u.ID, token); err != nil {
		return err
	}

	return s.mailer.SendPasswordReset(ctx, email, token)
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := ParseJWT(token)
	if err != nil {
		return ErrInvalidResetToken
	}

	if len(newPassword) < 4 {
		return fmt.Errorf("%w: password must be at least 4 characters long", ErrInvalidInput)
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, claims.UserID, hashed)
}

func age(dob time.Time) int {
	now := time.Now()
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	return years
}
