package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/pkg"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type usersRepo interface {
	Create(ctx context.Context, nu NewUser) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	GetInfo(ctx context.Context, userID int) (*Info, error)
	UpdateDisplayName(ctx context.Context, userID int, displayName string) error
}

type sessionStore interface {
	Login(ctx context.Context, user auth.SessionUser, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type RegisterParams struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
	IsSuperuser bool
}

func (p RegisterParams) validate() error {
	if strings.TrimSpace(p.Username) == "" {
		return fmt.Errorf("%w: username empty", ErrValidation)
	}
	if p.Password == "" {
		return fmt.Errorf("%w: password empty", ErrValidation)
	}
	if strings.TrimSpace(p.DisplayName) == "" {
		return fmt.Errorf("%w: display name empty", ErrValidation)
	}
	if !emailRegex.MatchString(p.Email) {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	if len(password) > pkg.MaxPasswordBytes {
		return "", fmt.Errorf("%w: password longer than %d bytes", ErrValidation, pkg.MaxPasswordBytes)
	}

	pwHash, err := pkg.HashPassword(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %s", ErrValidation, err)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return pwHash, nil
}

type LoginResult struct {
	Token       string `json:"token"`
	DisplayName string `json:"displayName"`
	IsSuperuser bool   `json:"isSuperuser"`
}

type Service struct {
	repo     usersRepo
	sessions sessionStore
	now      func() time.Time
}

func NewService(repo usersRepo, sessions sessionStore) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	pwHash, err := hashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, NewUser{
		Username:     strings.TrimSpace(params.Username),
		Email:        params.Email,
		PasswordHash: pwHash,
		DisplayName:  strings.TrimSpace(params.DisplayName),
		IsSuperuser:  params.IsSuperuser,
		CreatedAt:    s.now(),
	})
}

// Login checks the credentials and opens a new session.
// Unknown user and wrong password both end up as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[username] failed login attempt for user: %s", username)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %s", username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Login(ctx, auth.SessionUser{
		ID:          user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	}, s.now())
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	result := &LoginResult{
		Token:       token,
		IsSuperuser: user.IsSuperuser,
	}
	info, err := s.repo.GetInfo(ctx, user.ID)
	if err != nil {
		// session already exists at this point
		log.Errorf("login, get user info for %s: %s", username, err)
	} else {
		result.DisplayName = info.DisplayName
	}

	return result, nil
}

func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	return s.sessions.Logout(ctx, token)
}

func (s *Service) ResetPassword(ctx context.Context, username, newPassword string) error {
	if username == "" || newPassword == "" {
		return fmt.Errorf("%w: username and password required", ErrValidation)
	}

	pwHash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, username, pwHash)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) GetInfo(ctx context.Context, userID int) (*Info, error) {
	return s.repo.GetInfo(ctx, userID)
}

func (s *Service) UpdateInfo(ctx context.Context, userID int, displayName string) (*Info, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("%w: display name empty", ErrValidation)
	}

	if err := s.repo.UpdateDisplayName(ctx, userID, displayName); err != nil {
		return nil, err
	}

	return s.repo.GetInfo(ctx, userID)
}
