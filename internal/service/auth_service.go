package service

import (
	"context"
	"errors"
	"fmt"
	"murmur/internal/config"
	"murmur/internal/models"
	"murmur/internal/repository"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error)
	ParseAccessToken(tokenString string) (int64, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	_, err := s.userRepo.GetUserByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return nil, conflict("имя пользователя или email уже заняты")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, repository.ErrConflict) {
			return nil, conflict("имя пользователя или email уже заняты")
		}
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidPassword) {
			return nil, "", "", unauthorized("неверный email или пароль")
		}
		return nil, "", "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", "", unauthorized("refresh token истек или недействителен")
		}
		return nil, "", "", fmt.Errorf("ошибка проверки refresh token: %w", err)
	}

	accessToken, newRefreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, newRefreshToken, nil
}

// ParseAccessToken validates the token and returns the user id it was issued for.
func (s *authService) ParseAccessToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, s.signingKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, unauthorized("недействительный токен: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, unauthorized("неверные claims токена")
	}

	// JSON numbers decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return 0, unauthorized("неверные данные в токене")
	}

	return int64(userID), nil
}

func (s *authService) signingKey(*jwt.Token) (interface{}, error) {
	return []byte(s.cfg.JWTSecretKey), nil
}

func (s *authService) issueTokens(ctx context.Context, user *models.User) (string, string, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	err = s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken, refreshTokenExpiry)
	if err != nil {
		return "", "", fmt.Errorf("ошибка сохранения refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"exp":      now.Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) generateRefreshToken() (string, time.Time) {
	return uuid.New().String(), s.now().Add(s.cfg.RefreshTokenDuration)
}
