package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sadhana/internal/models/db_models"
	"sadhana/internal/models/request_models"
	"sadhana/pkg/utils"
)

func hashOrFail(t *testing.T, password string) string {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hashed
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakeAccountRepo()
	account := repo.add("a@x.com", db_models.RoleUser, hashOrFail(t, "secret1"))
	service := NewAccountService(repo)

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), claims.UserID)
	assert.Equal(t, db_models.RoleUser, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.add("a@x.com", db_models.RoleUser, hashOrFail(t, "secret1"))
	service := NewAccountService(repo)

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "a@x.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewAccountService(newFakeAccountRepo())

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@x.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	err := service.Register(context.Background(), request_models.RegisterRequest{
		Email:    "new@x.com",
		Password: "secret1",
		Role:     db_models.RoleCounsellor,
	})
	require.NoError(t, err)

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "new@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleCounsellor, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	req := request_models.RegisterRequest{
		Email:    "dup@x.com",
		Password: "secret1",
		Role:     db_models.RoleUser,
	}
	require.NoError(t, service.Register(context.Background(), req))

	err := service.Register(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	service := NewAccountService(newFakeAccountRepo())

	err := service.Register(context.Background(), request_models.RegisterRequest{
		Email:    "x@x.com",
		Password: "secret1",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidRole)
}

func TestAssignRole(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.add("a@x.com", db_models.RoleUser, "hash")
	service := NewAccountService(repo)

	require.NoError(t, service.AssignRole(context.Background(), "a@x.com", db_models.RoleCounsellor))
	assert.Equal(t, db_models.RoleCounsellor, repo.accounts["a@x.com"].Role)

	err := service.AssignRole(context.Background(), "missing@x.com", db_models.RoleAdmin)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)

	err = service.AssignRole(context.Background(), "a@x.com", "root")
	assert.ErrorIs(t, err, utils.ErrInvalidRole)
}

func TestGetByEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	account := repo.add("a@x.com", db_models.RoleAdmin, "hash")
	service := NewAccountService(repo)

	got, err := service.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), got.ID)
	assert.Equal(t, db_models.RoleAdmin, got.Role)

	_, err = service.GetByEmail(context.Background(), "missing@x.com")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
