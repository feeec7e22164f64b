package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clientdesk/portal/internal/core/domain"
	"github.com/clientdesk/portal/internal/core/ports"
)

// AuthService implements signup and login for admin and client accounts.
type AuthService struct {
	admins    ports.AdminRepository
	clients   ports.ClientRepository
	recorder  ports.ActivityRecorder
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	admins ports.AdminRepository,
	clients ports.ClientRepository,
	recorder ports.ActivityRecorder,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		admins:    admins,
		clients:   clients,
		recorder:  recorder,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) SignupAdmin(ctx context.Context, username, email, password string) (string, *domain.Admin, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	admin := &domain.Admin{
		Username:     strings.TrimSpace(username),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.admins.Create(ctx, admin)
	if err != nil {
		return "", nil, err
	}

	s.record(created.ID, created.Username, domain.ActionSignedUp, now)

	token, err := s.generateToken(created.ID, created.Username, created.Role)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("admin_id", created.ID).Str("email", created.Email).Msg("admin signed up")
	return token, created, nil
}

func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	admin, err := s.admins.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		s.log.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to update last login")
	} else {
		admin.LastLogin = &now
	}

	s.record(admin.ID, admin.Username, domain.ActionLoggedIn, now)

	token, err := s.generateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}

func (s *AuthService) SignupClient(ctx context.Context, username, email, password string) (string, *domain.Client, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		Username:     strings.TrimSpace(username),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		return "", nil, err
	}

	s.record(created.ID, created.Username, domain.ActionSignedUp, now)

	token, err := s.generateToken(created.ID, created.Username, created.Role)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("client_id", created.ID).Str("email", created.Email).Msg("client signed up")
	return token, created, nil
}

func (s *AuthService) LoginClient(ctx context.Context, email, password string) (string, *domain.Client, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	client, err := s.clients.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.clients.UpdateLastLogin(ctx, client.ID, now); err != nil {
		s.log.Warn().Err(err).Str("client_id", client.ID).Msg("failed to update last login")
	} else {
		client.LastLogin = &now
	}

	s.record(client.ID, client.Username, domain.ActionLoggedIn, now)

	token, err := s.generateToken(client.ID, client.Username, client.Role)
	if err != nil {
		return "", nil, err
	}

	return token, client, nil
}

// record hands an entry to the async recorder. Auth flows never fail on a
// full audit queue.
func (s *AuthService) record(subjectID, username, action string, at time.Time) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(domain.Activity{
		SubjectID: subjectID,
		Username:  username,
		Action:    action,
		Timestamp: at,
	})
}

func (s *AuthService) generateToken(subjectID, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"subject_id": subjectID,
		"username":   username,
		"role":       role,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
