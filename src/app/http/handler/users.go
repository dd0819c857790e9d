package handler

import (
	"github.com/gin-gonic/gin"

	"photoboard/src/app/http/dto"
	"photoboard/src/app/http/response"
	"photoboard/src/core/ports"
	"photoboard/src/core/usecase"
)

// UsersHandler handles registration, sign-in, and profile endpoints.
type UsersHandler struct {
	users  *usecase.UserService
	tokens ports.TokenService
}

func NewUsersHandler(users *usecase.UserService, tokens ports.TokenService) *UsersHandler {
	return &UsersHandler{users: users, tokens: tokens}
}

// SignUp handles POST /sign-up.
func (h *UsersHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}

	response.OK(c, user)
}

// SignIn handles POST /sign-in.
func (h *UsersHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"token": token})
}

// List handles GET /users.
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, users)
}

// Me handles GET /users/me.
func (h *UsersHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, user)
}

// Get handles GET /users/:id.
func (h *UsersHandler) Get(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, user)
}

// UpdateProfile handles PATCH /users/me.
func (h *UsersHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, req.Name, req.About)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, user)
}

// UpdateAvatar handles PATCH /users/me/avatar.
func (h *UsersHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateAvatarRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.UpdateAvatar(c.Request.Context(), userID, req.Avatar)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, user)
}
