package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/urbanfood/usersvc/api/http/presenter"
	"github.com/urbanfood/usersvc/pkg/security/jwt"
	"github.com/urbanfood/usersvc/pkg/users"
)

type UserHandler struct {
	useCase users.UseCase
}

func NewUserHandler(useCase users.UseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

// signupRequest mirrors the public API contract; field names are the
// service's original Portuguese ones.
type signupRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	Senha     string `json:"senha"`
	EhAdmin   bool   `json:"eh_admin"`
}

// userResponse has no password field at all, so a hash can never leak
// through serialization.
type userResponse struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	EhAdmin   bool   `json:"eh_admin"`
}

func toUserResponse(u users.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Nome:      u.FirstName,
		Sobrenome: u.LastName,
		Email:     u.Email,
		EhAdmin:   u.IsAdmin,
	}
}

// Signup handles user registration.
// @Summary Register user
// @Tags    usuarios
// @Accept  json
// @Produce json
// @Param   input body signupRequest true "registration payload"
// @Success 201 {object} userResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 406 {object} presenter.ErrorResponse
// @Router  /usuarios/signup [post]
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Senha == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and senha are required")
	}

	user, err := h.useCase.Register(c.Context(), users.RegisterInput{
		FirstName: req.Nome,
		LastName:  req.Sobrenome,
		Email:     req.Email,
		Password:  req.Senha,
		IsAdmin:   req.EhAdmin,
	})
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return presenter.Error(c, http.StatusNotAcceptable,
				"Já existe um usuário com este email cadastrado.")
		}
		if errors.Is(err, users.ErrPasswordTooLong) {
			return presenter.Error(c, http.StatusBadRequest, "senha exceeds the maximum length")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
	}

	return presenter.JSON(c, http.StatusCreated, toUserResponse(user))
}

// loginRequest follows the OAuth2 password form convention: the email is
// submitted as "username".
type loginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles user login.
// @Summary Login
// @Tags    usuarios
// @Accept  x-www-form-urlencoded
// @Produce json
// @Param   username formData string true "email"
// @Param   password formData string true "password"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /usuarios/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid login payload")
	}

	result, err := h.useCase.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			// One message for unknown email and wrong password alike.
			return presenter.Error(c, http.StatusBadRequest, "Dados de acesso incorretos.")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, tokenResponse{
		AccessToken: result.Token,
		TokenType:   "bearer",
	})
}

// List returns all registered users.
// @Summary List users
// @Tags    usuarios
// @Produce json
// @Success 200 {array} userResponse
// @Router  /usuarios/ [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	all, err := h.useCase.List(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list users")
	}
	out := make([]userResponse, 0, len(all))
	for _, u := range all {
		out = append(out, toUserResponse(u))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Me returns the record of the authenticated caller.
// @Summary Current user
// @Tags    usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} userResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /usuarios/logado [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, ok := jwt.CurrentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	return presenter.JSON(c, http.StatusOK, toUserResponse(user))
}
