package service

import (
	"context"
	"testing"
	"time"

	"notes-be/internal/entity"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceGetProfile(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := NewUserService(factory, memory.NewProfileCache())

	user := &entity.User{
		Id:           uuid.New(),
		Email:        "a@x.com",
		FullName:     "Alice",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	factory.uow.userRepo.users[user.Id] = user

	res, err := svc.GetProfile(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Id, res.Id)
	assert.Equal(t, "Alice", res.FullName)
	assert.Equal(t, "a@x.com", res.Email)

	// Second resolution is served from the cache.
	delete(factory.uow.userRepo.users, user.Id)
	res, err = svc.GetProfile(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Id, res.Id)
}

func TestUserServiceGetProfileUnknownId(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := NewUserService(factory, memory.NewProfileCache())

	_, err := svc.GetProfile(context.Background(), uuid.New())

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Code, "a token outliving its account is an auth failure")
}
