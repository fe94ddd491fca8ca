package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"standard", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi"},
		{"mixed case scheme", "BeArEr abc.def.ghi", "abc.def.ghi"},
		{"trailing space", "Bearer abc ", "abc"},
		{"wrong scheme", "Basic dXNlcjpwdw==", ""},
		{"scheme only", "Bearer", ""},
		{"no scheme", "abc.def.ghi", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBearerToken(tt.header))
		})
	}
}

func TestAuthenticateTokenForDeletedUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	s := &Server{
		config:   &config.Config{JWTSecret: "test-secret"},
		userRepo: mockUsers,
	}

	// Valid signature, but the subject is gone.
	token, err := auth.IssueToken("test-secret", 42, "ghost")
	require.NoError(t, err)
	mockUsers.On("GetByID", mock.Anything, uint(42)).
		Return(nil, models.NewNotFoundError("User", uint(42)))

	app := fiber.New()
	app.Use(s.Authenticate())
	app.Get("/whoami", s.LoginRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	mockUsers.AssertExpectations(t)
}

func TestAuthenticateWrongSecret(t *testing.T) {
	s := &Server{config: &config.Config{JWTSecret: "the-real-secret"}}

	token, err := auth.IssueToken("some-other-secret", 1, "intruder")
	require.NoError(t, err)

	app := fiber.New()
	app.Use(s.Authenticate())
	app.Get("/whoami", s.LoginRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeletePostHandlerMapsNotFound(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockComments := new(MockCommentRepository)
	s := &Server{}
	s.postService = service.NewPostService(mockPosts, mockComments)

	mockPosts.On("DeleteOwned", mock.Anything, uint(7), uint(1)).
		Return(models.NewNotFoundError("Post", uint(7)))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	})
	app.Delete("/posts/:id", s.DeletePost)

	req := httptest.NewRequest(http.MethodDelete, "/posts/7", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockPosts.AssertExpectations(t)
}

func TestHealthEndpoints(t *testing.T) {
	app, _, _ := newTestServer(t)

	live := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, live.StatusCode)

	ready := doJSON(t, app, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, ready.StatusCode)
	body := decodeBody(t, ready)
	assert.Equal(t, "healthy", body["status"])
}
