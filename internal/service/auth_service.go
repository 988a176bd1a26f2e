package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
	ErrUsernameTaken      = errors.New("имя пользователя занято")
	ErrInvalidToken       = errors.New("невалидный токен")
	ErrWeakPassword       = errors.New("пароль слишком короткий")
	ErrBadUsername        = errors.New("недопустимое имя пользователя")
)

var jwtSecret []byte

const tokenTTL = 24 * time.Hour

// InitJWT читает секрет подписи из окружения. Вызывается один раз на старте.
func InitJWT() {
	jwtSecret = []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		// dev-режим, в проде секрет обязателен
		jwtSecret = []byte("dev-secret-change-me")
	}
}

// обрабатывает регистрацию и вход по паре логин/пароль
type AuthService struct {
	userRepo *repository.UserRepository
}

// создает новый сервис авторизации
func NewAuthService(db *pgxpool.Pool) *AuthService {
	return &AuthService{
		userRepo: repository.NewUserRepository(db),
	}
}

// регистрирует нового пользователя со стартовым балансом
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 32 {
		return nil, "", ErrBadUsername
	}
	if len(password) < 6 {
		return nil, "", ErrWeakPassword
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.Create(ctx, username, string(hash))
	if err != nil {
		return nil, "", err
	}

	token, err := GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// проверяет пароль и выдает токен
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateToken выпускает подписанный JWT с user_id в claims
func GenerateToken(userID int64, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken проверяет подпись и срок действия, возвращает user_id и флаг админа
func ParseToken(tokenString string) (userID int64, isAdmin bool, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, false, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false, ErrInvalidToken
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false, ErrInvalidToken
	}
	admin, _ := claims["is_admin"].(bool)
	return int64(id), admin, nil
}
