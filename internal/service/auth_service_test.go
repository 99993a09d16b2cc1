package service_test

import (
	"context"
	"testing"

	"github.com/rafaelmsj/commandSystem/internal/config"
	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/model"
	"github.com/rafaelmsj/commandSystem/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildAuthSvc(t *testing.T) (service.AuthService, *stubUsuarioRepo) {
	t.Helper()
	repo := newStubUsuarioRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		ID:           uuid.New(),
		Username:     "operador1",
		Nome:         "Operador Um",
		PasswordHash: string(hash),
		Rol:          "operador",
		Ativo:        true,
	}
	repo.usuarios[u.ID] = u
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return service.NewAuthService(repo, cfg), repo
}

func TestLogin_CredenciaisValidas(t *testing.T) {
	svc, _ := buildAuthSvc(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "operador1",
		Password: "segredo123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "operador1", resp.User.Username)
	assert.Equal(t, "operador", resp.User.Rol)
}

func TestLogin_SenhaErrada(t *testing.T) {
	svc, _ := buildAuthSvc(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "operador1",
		Password: "errada",
	})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	svc, _ := buildAuthSvc(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "fantasma",
		Password: "qualquer",
	})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)
}

func TestRefresh_EmiteNovosTokens(t *testing.T) {
	svc, _ := buildAuthSvc(t)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "operador1",
		Password: "segredo123",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), dto.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "operador1", resp.User.Username)
}

func TestRefresh_TokenInvalido(t *testing.T) {
	svc, _ := buildAuthSvc(t)

	_, err := svc.Refresh(context.Background(), dto.RefreshRequest{
		RefreshToken: "nao-e-um-jwt",
	})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)
}

func TestRefresh_UsuarioDesativado(t *testing.T) {
	svc, repo := buildAuthSvc(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "operador1",
		Password: "segredo123",
	})
	require.NoError(t, err)

	for _, u := range repo.usuarios {
		u.Ativo = false
	}

	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{
		RefreshToken: resp.RefreshToken,
	})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)
}
