package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// AuthHandler exposes the session operations: sign-up, sign-in, sign-out.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Profile *domain.Profile `json:"profile"`
}

// SignUp registers a new account. The resulting profile always carries the
// client role; when no full name is supplied the local part of the email
// is used.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Token: result.Token, Profile: result.Profile})
}

// SignIn authenticates credentials and returns a session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, Profile: result.Profile})
}

// SignOut revokes the presented token for the remainder of its lifetime.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	token, _ := c.Get("token").(string)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	if err := h.authService.SignOut(c.Request().Context(), token); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "signed out"})
}
