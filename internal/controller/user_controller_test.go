package controller

import (
	"context"
	"net/http"
	"testing"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserControllerGetUser(t *testing.T) {
	userId := uuid.New()
	svc := &fakeUserService{
		getProfileFn: func(_ context.Context, caller uuid.UUID) (*dto.UserResponse, error) {
			assert.Equal(t, userId, caller)
			return &dto.UserResponse{
				Id:        caller,
				FullName:  "Alice",
				Email:     "a@x.com",
				CreatedOn: time.Now(),
			}, nil
		},
	}

	app := newTestApp()
	NewUserController(svc).RegisterRoutes(app, stubAuth(userId))

	status, body := doJSON(t, app, http.MethodGet, "/get-user", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["error"])
	assert.Equal(t, "User fetched successfully", body["message"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Alice", user["fullName"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, user, "passwordHash")
}

func TestUserControllerGetUserStaleToken(t *testing.T) {
	svc := &fakeUserService{
		getProfileFn: func(context.Context, uuid.UUID) (*dto.UserResponse, error) {
			return nil, serverutils.Unauthorized("Unauthorized")
		},
	}

	app := newTestApp()
	NewUserController(svc).RegisterRoutes(app, stubAuth(uuid.New()))

	status, body := doJSON(t, app, http.MethodGet, "/get-user", nil)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Unauthorized", body["message"])
}
