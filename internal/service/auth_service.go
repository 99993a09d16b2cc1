package service

import (
	"context"
	"time"

	"github.com/rafaelmsj/commandSystem/internal/config"
	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/middleware"
	"github.com/rafaelmsj/commandSystem/internal/model"
	"github.com/rafaelmsj/commandSystem/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	cfg         *config.Config
}

func NewAuthService(usuarioRepo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{usuarioRepo: usuarioRepo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.usuarioRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	return s.buildTokens(usuario)
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrCredenciaisInvalidas
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	// Re-read the user so a deactivated account cannot keep refreshing.
	usuario, err := s.usuarioRepo.FindByID(ctx, userID)
	if err != nil || !usuario.Ativo {
		return nil, ErrCredenciaisInvalidas
	}
	return s.buildTokens(usuario)
}

func (s *authService) buildTokens(usuario *model.Usuario) (*dto.LoginResponse, error) {
	now := time.Now()
	accessTTL := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	refreshTTL := time.Duration(s.cfg.JWTRefreshHours) * time.Hour

	access, err := s.signToken(usuario, now, accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(usuario, now, refreshTTL)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(accessTTL.Seconds()),
		User: dto.UsuarioResponse{
			ID:       usuario.ID.String(),
			Username: usuario.Username,
			Nome:     usuario.Nome,
			Rol:      usuario.Rol,
		},
	}, nil
}

func (s *authService) signToken(usuario *model.Usuario, now time.Time, ttl time.Duration) (string, error) {
	claims := middleware.JWTClaims{
		UserID:   usuario.ID.String(),
		Username: usuario.Username,
		Rol:      usuario.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   usuario.ID.String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
