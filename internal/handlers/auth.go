package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both register and login.
type authCredentials struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"pw123"`
}

// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      201   {object}  map[string]interface{}  "token, user, message"
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input, msgCredentialsRequired); !ok {
		return
	}

	user, token, err := h.services.Register(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.fail(c, err, msgCredentialsRequired, "auth_register_failed", "username", input.Username)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"user":    user,
		"message": msgRegistered,
	})
}

// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "token, user, message"
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input, msgCredentialsRequired); !ok {
		return
	}

	user, token, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.fail(c, err, msgCredentialsRequired, "auth_login_failed", "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user":    user,
		"message": msgLoggedIn,
	})
}
