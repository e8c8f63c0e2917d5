package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// AuthService handles registration, password verification and
// bearer-credential issuance.
type AuthService struct {
	users           *repository.UserRepository
	refreshTokens   *repository.RefreshTokenRepository
	jwtSecret       []byte
	jwtIssuer       string
	jwtAudience     string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// AccessTokenClaims is the signed payload of an access token.
type AccessTokenClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(
	users *repository.UserRepository,
	refreshTokens *repository.RefreshTokenRepository,
	jwtSecret, jwtIssuer, jwtAudience string,
	accessTokenTTL, refreshTokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:           users,
		refreshTokens:   refreshTokens,
		jwtSecret:       []byte(jwtSecret),
		jwtIssuer:       jwtIssuer,
		jwtAudience:     jwtAudience,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

// Register creates an account with a bcrypt password hash and the default
// role. The user_name unique index is the authoritative duplicate guard;
// the lookup before insert only shortcuts the common case.
func (s *AuthService) Register(ctx context.Context, userName, password string) (*dto.RegisteredUserDto, error) {
	existing, err := s.users.FindByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		UserName:     userName,
		PasswordHash: string(hash),
		Role:         constants.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, err
	}

	return &dto.RegisteredUserDto{ID: user.ID, UserName: user.UserName}, nil
}

// Login verifies the password and mints an access token plus a persisted
// refresh token. Unknown user and wrong password return the same error.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*dto.TokenPairDto, error) {
	user, err := s.users.FindByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.mintAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken := &model.RefreshToken{
		Token:      uuid.NewString(),
		ExpiresUtc: time.Now().UTC().Add(s.refreshTokenTTL),
		IsRevoked:  false,
		UserID:     user.ID,
	}
	if err := s.refreshTokens.Create(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &dto.TokenPairDto{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
	}, nil
}

// Refresh exchanges a usable refresh token for a new access token. The
// refresh token value itself is not rotated; it stays valid until its own
// expiry or revocation.
func (s *AuthService) Refresh(ctx context.Context, refreshTokenValue string) (*dto.AccessTokenDto, error) {
	stored, err := s.refreshTokens.FindByToken(ctx, refreshTokenValue)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.IsRevoked || stored.ExpiresUtc.Before(time.Now().UTC()) {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := s.mintAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AccessTokenDto{AccessToken: accessToken}, nil
}

// Logout revokes the refresh token. Revoking an already revoked token
// succeeds again.
func (s *AuthService) Logout(ctx context.Context, refreshTokenValue string) error {
	stored, err := s.refreshTokens.FindByToken(ctx, refreshTokenValue)
	if err != nil {
		return err
	}
	if stored == nil {
		return apperrors.ErrRefreshTokenNotFound
	}

	return s.refreshTokens.Revoke(ctx, stored)
}

// ParseAccessToken validates signature, issuer, audience and expiry.
func (s *AuthService) ParseAccessToken(tokenString string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) { return s.jwtSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.jwtIssuer),
		jwt.WithAudience(s.jwtAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *AuthService) mintAccessToken(user *model.User) (string, error) {
	now := time.Now().UTC()
	claims := AccessTokenClaims{
		Name: user.UserName,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    s.jwtIssuer,
			Audience:  jwt.ClaimStrings{s.jwtAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}
