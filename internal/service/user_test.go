package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medialogapp/medialog-server/internal/store"
)

func TestUserService_CreateUser(t *testing.T) {
	s := newTestStore(t)
	svc := NewUserService(s, testLogger())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "jack", "jack@example.com", "Jack", "secret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "jack", user.Username)
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	svc := NewUserService(s, testLogger())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "jack", "", "", "")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "jack", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidInput)
	assert.Equal(t, "Username already taken", err.Error())
}

func TestUserService_CreateUser_MissingUsername(t *testing.T) {
	s := newTestStore(t)
	svc := NewUserService(s, testLogger())

	_, err := svc.CreateUser(context.Background(), "", "", "", "")
	require.Error(t, err)
	assert.Equal(t, "Username is required", err.Error())
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	s := newTestStore(t)
	svc := NewUserService(s, testLogger())

	_, err := svc.GetUser(context.Background(), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, "User with id 5 not found", err.Error())
}

func TestUserService_Login(t *testing.T) {
	s := newTestStore(t)
	svc := NewUserService(s, testLogger())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "jack", "jack@example.com", "Jack", "secret")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "jack", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Login(ctx, "jack", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUnauthorized)

	_, err = svc.Login(ctx, "nobody", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUnauthorized)
}
