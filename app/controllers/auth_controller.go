package controllers

import (
	"errors"
	"net/http"

	"github.com/rajsingh19/wearhouse/app/requests"
	"github.com/rajsingh19/wearhouse/app/services"
	"github.com/rajsingh19/wearhouse/pkg/ctx"
	"github.com/rajsingh19/wearhouse/pkg/logger"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register handles POST /api/register.
func (ac *AuthController) Register(c *ctx.Context) {
	var req requests.RegisterRequest
	if !c.BindJSON(&req) {
		return
	}

	user, token, err := ac.service.Register(req)
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		c.Error(http.StatusBadRequest, err.Error())
	case err != nil:
		logger.WithCtx(c.Context()).Error("register user", "error", err)
		c.Internal()
	default:
		c.Created(map[string]any{"user": user, "token": token})
	}
}

// Login handles POST /api/login.
func (ac *AuthController) Login(c *ctx.Context) {
	var req requests.LoginRequest
	if !c.BindJSON(&req) {
		return
	}

	user, token, err := ac.service.Login(req)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.Error(http.StatusUnauthorized, err.Error())
	case err != nil:
		logger.WithCtx(c.Context()).Error("login user", "error", err)
		c.Internal()
	default:
		c.Success(map[string]any{"user": user, "token": token})
	}
}
