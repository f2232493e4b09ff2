package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both register and login.
type authCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// register godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    input body authCredentials true "credentials"
// @Success  201 {object} map[string]any
// @Failure  400 {object} map[string]string
// @Router   /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Register(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.writeError(c, "auth_register_failed", err, "username", input.Username)
		return
	}

	if h.log != nil {
		h.log.Infow("auth_registered", "user_id", user.ID, "username", user.Username)
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"user":    user,
	})
}

// login godoc
// @Summary  Exchange credentials for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    input body authCredentials true "credentials"
// @Success  200 {object} service.LoginResult
// @Failure  401 {object} map[string]string
// @Router   /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.writeError(c, "auth_login_failed", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, res)
}

// me godoc
// @Summary   Current user
// @Tags      auth
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} map[string]any
// @Failure   401 {object} map[string]string
// @Failure   404 {object} map[string]string
// @Router    /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	user, err := h.services.CurrentUser(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		h.writeError(c, "auth_me_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
