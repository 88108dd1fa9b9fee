package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gracechapel/church-management-backend/internal/apperror"
	"github.com/gracechapel/church-management-backend/internal/auditlog"
	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/internal/validation"
)

type Service interface {
	Register(ctx context.Context, in RegisterInput, ip string) (*user.User, string, error)
	Login(ctx context.Context, in LoginInput, ip string) (*user.User, string, error)
	CheckSession(ctx context.Context, token string) (*user.User, error)
	Logout(ctx context.Context, token string) error
}

type service struct {
	users    *user.Repository
	sessions *SessionStore
	audit    auditlog.Service
}

func NewService(users *user.Repository, sessions *SessionStore, audit auditlog.Service) Service {
	return &service{users: users, sessions: sessions, audit: audit}
}

// =============================
// Register
// =============================

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a User and immediately binds a session to it. All of
// username, email and password are required; duplicates are checked against
// the store, not the client's claim.
func (s *service) Register(ctx context.Context, in RegisterInput, ip string) (*user.User, string, error) {
	errs := validation.Errors{}
	validation.Required(errs, "username", in.Username)
	validation.Length(errs, "username", in.Username, 1, 120)
	validation.Required(errs, "email", in.Email)
	validation.Email(errs, "email", in.Email)
	if in.Password == "" {
		errs.Add("password", "This field is required")
	} else {
		validation.Password(errs, "password", in.Password)
	}
	if err := errs.Err(); err != nil {
		return nil, "", err
	}

	taken, err := s.users.UsernameTaken(in.Username, 0)
	if err != nil {
		return nil, "", err
	}
	if taken {
		errs.Add("username", "Username already taken")
	}
	taken, err = s.users.EmailTaken(in.Email, 0)
	if err != nil {
		return nil, "", err
	}
	if taken {
		errs.Add("email", "Email already registered")
	}
	if err := errs.Err(); err != nil {
		s.audit.LogAction(ctx, nil, "USER_REGISTER", map[string]interface{}{
			"username": in.Username,
			"reason":   err.Error(),
		}, ip, "failure")
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &user.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(u); err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}

	s.audit.LogAction(ctx, &u.ID, "USER_REGISTER", map[string]interface{}{
		"username": u.Username,
	}, ip, "success")

	return u, token, nil
}

// =============================
// Login
// =============================

type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and binds a fresh session. Unknown usernames,
// accounts without a stored hash and wrong passwords all fail the same way
// so usernames cannot be enumerated.
func (s *service) Login(ctx context.Context, in LoginInput, ip string) (*user.User, string, error) {
	u, err := s.users.FindByUsername(in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.audit.LogAction(ctx, nil, "USER_LOGIN", map[string]interface{}{
				"username": in.Username,
				"reason":   "unknown username",
			}, ip, "failure")
			return nil, "", fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
		}
		return nil, "", err
	}

	if u.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		s.audit.LogAction(ctx, &u.ID, "USER_LOGIN", map[string]interface{}{
			"username": in.Username,
			"reason":   "bad credentials",
		}, ip, "failure")
		return nil, "", fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
	}

	token, err := s.sessions.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}

	s.audit.LogAction(ctx, &u.ID, "USER_LOGIN", nil, ip, "success")
	return u, token, nil
}

// =============================
// Session check / logout
// =============================

// CheckSession resolves the session binding to a live user. A binding whose
// user no longer exists is cleared and treated as unauthenticated.
func (s *service) CheckSession(ctx context.Context, token string) (*user.User, error) {
	userID, err := s.sessions.Resolve(token)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}

	u, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = s.sessions.Revoke(token)
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	if _, err := s.sessions.Resolve(token); err != nil {
		if errors.Is(err, ErrNoSession) {
			return apperror.ErrUnauthorized
		}
		return err
	}
	return s.sessions.Revoke(token)
}
