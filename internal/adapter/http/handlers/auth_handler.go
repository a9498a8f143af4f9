package handlers

import (
	"net/http"

	request "metalshop/internal/adapter/http/dto/request"
	response "metalshop/internal/adapter/http/dto/response"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Exchange credentials for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    credentials  body      request.LoginRequest  true  "Credentials"
// @Success  200          {object}  pkg.Envelope
// @Failure  401          {object}  pkg.Envelope
// @Router   /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondError(c, "[auth][handler] login", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(response.FromLogin(res)))
}

// Register godoc
// @Summary  Create an operator account when registration is open
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    account  body      request.RegisterRequest  true  "Account"
// @Success  201      {object}  pkg.Envelope
// @Failure  403      {object}  pkg.Envelope
// @Router   /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "[auth][handler] register", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(response.FromUser(user)))
}
