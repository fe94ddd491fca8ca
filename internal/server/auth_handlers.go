package server

import (
	"log/slog"

	"inkwell/internal/auth"
	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is what a successful login returns
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Login handles POST /api/login. An unknown username and a wrong password
// produce the exact same response so the endpoint leaks nothing about
// which usernames exist.
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	user, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}

	if user == nil || !auth.CheckPassword(req.Password, user.Password) {
		middleware.Logger.InfoContext(c.UserContext(), "login rejected",
			slog.String("username", req.Username))
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("wrong username or password"))
	}

	token, err := auth.IssueToken(s.config.JWTSecret, user.ID, user.Username)
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "login succeeded",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("username", user.Username))

	return c.Status(fiber.StatusOK).JSON(LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}
