package controllers

import (
	"github.com/gin-gonic/gin"

	"yultimate/dto"
	"yultimate/middleware"
	"yultimate/response"
	"yultimate/services"
	"yultimate/validator"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) AuthController {
	return AuthController{auth: auth}
}

// Login godoc
// @Summary  Sign in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      dto.LoginInput  true  "credentials"
// @Success  200   {object}  dto.LoginResponse
// @Failure  400   {object}  response.ErrorBody
// @Failure  401   {object}  response.ErrorBody
// @Failure  429   {object}  response.ErrorBody
// @Router   /api/auth/login [post]
func (a AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FromError(c, validator.BindingError(err), "Login failed")
		return
	}

	resp, err := a.auth.Login(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err, "Login failed")
		return
	}
	response.Success(c, resp)
}

// GoogleLogin godoc
// @Summary  Sign in with a Google ID token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      dto.GoogleLoginInput  true  "Google ID token"
// @Success  200   {object}  dto.LoginResponse
// @Failure  401   {object}  response.ErrorBody
// @Router   /api/auth/google [post]
func (a AuthController) GoogleLogin(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FromError(c, validator.BindingError(err), "Login failed")
		return
	}

	resp, err := a.auth.GoogleLogin(c.Request.Context(), input.IDToken)
	if err != nil {
		response.FromError(c, err, "Login failed")
		return
	}
	response.Success(c, resp)
}

// Me godoc
// @Summary   Current user
// @Tags      auth
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  dto.UserResponse
// @Router    /api/auth/me [get]
func (a AuthController) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Unauthorized(c, "Authorization token required")
		return
	}
	user, err := a.auth.Me(c.Request.Context(), identity.UserID)
	if err != nil {
		response.FromError(c, err, "Failed to load user")
		return
	}
	response.Success(c, user)
}
