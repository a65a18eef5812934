package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// fakeAuthService returns whatever its function fields produce, so each test
// can script the service outcome it needs.
type fakeAuthService struct {
	registerFn func(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return f.loginFn(ctx, req)
}

type fakeNoteService struct {
	createFn    func(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	updateFn    func(ctx context.Context, userId, noteId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	listFn      func(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
	setPinnedFn func(ctx context.Context, userId, noteId uuid.UUID, isPinned bool) (*dto.NoteResponse, error)
	deleteFn    func(ctx context.Context, userId, noteId uuid.UUID) error
	searchFn    func(ctx context.Context, userId uuid.UUID, queryText string) ([]*dto.NoteResponse, error)
}

func (f *fakeNoteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	return f.createFn(ctx, userId, req)
}

func (f *fakeNoteService) Update(ctx context.Context, userId, noteId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	return f.updateFn(ctx, userId, noteId, req)
}

func (f *fakeNoteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	return f.listFn(ctx, userId)
}

func (f *fakeNoteService) SetPinned(ctx context.Context, userId, noteId uuid.UUID, isPinned bool) (*dto.NoteResponse, error) {
	return f.setPinnedFn(ctx, userId, noteId, isPinned)
}

func (f *fakeNoteService) Delete(ctx context.Context, userId, noteId uuid.UUID) error {
	return f.deleteFn(ctx, userId, noteId)
}

func (f *fakeNoteService) Search(ctx context.Context, userId uuid.UUID, queryText string) ([]*dto.NoteResponse, error) {
	return f.searchFn(ctx, userId, queryText)
}

type fakeUserService struct {
	getProfileFn func(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

func (f *fakeUserService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	return f.getProfileFn(ctx, userId)
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))
	return app
}

// stubAuth stands in for the JWT middleware and injects a fixed caller id.
func stubAuth(userId uuid.UUID) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals("user_id", userId.String())
		return ctx.Next()
	}
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func doRaw(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}
