package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/rafaelmp/employee-import/internal/application/manager"
)

type AuthHandler struct {
	register app.RegisterManager
	login    app.LoginManager
	logout   app.LogoutManager
}

func NewAuthHandler(register app.RegisterManager, login app.LoginManager, logout app.LogoutManager) *AuthHandler {
	return &AuthHandler{register: register, login: login, logout: logout}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	out, err := h.register.Execute(c.Request().Context(), app.RegisterManagerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidRegistration):
			return c.JSON(http.StatusUnprocessableEntity, apiResponse{Error: &errorBody{
				Code:    "validation_error",
				Message: "name, email and password are required; password must have at least 8 characters",
			}})
		case errors.Is(err, app.ErrEmailTaken):
			return c.JSON(http.StatusUnprocessableEntity, apiResponse{Error: &errorBody{
				Code:    "validation_error",
				Message: "the email has already been taken",
			}})
		}
		return internalError(c, "failed to register manager")
	}

	return c.JSON(http.StatusCreated, apiResponse{
		Data:    out,
		Message: "Manager registered with success",
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	out, err := h.login.Execute(c.Request().Context(), app.LoginManagerInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
				Code:    "invalid_credentials",
				Message: "invalid email or password",
			}})
		}
		return internalError(c, "failed to log in")
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	token := currentToken(c)
	if token == "" {
		return unauthorized(c)
	}

	if err := h.logout.Execute(c.Request().Context(), app.LogoutManagerInput{Token: token}); err != nil {
		return internalError(c, "failed to log out")
	}

	return c.JSON(http.StatusOK, apiResponse{Message: "Logged out with success"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	m, ok := currentManager(c)
	if !ok {
		return unauthorized(c)
	}

	return c.JSON(http.StatusOK, apiResponse{Data: map[string]any{
		"id":    m.ID,
		"name":  m.Name,
		"email": m.Email,
	}})
}
