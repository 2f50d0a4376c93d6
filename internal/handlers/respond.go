package handlers

import (
	"errors"
	"io"
	"net/http"

	"wardrobe_catalog/internal/service"

	"github.com/gin-gonic/gin"
)

// Client-facing messages.
const (
	msgCredentialsRequired = "Username and password required"
	msgUserExists          = "User already exists"
	msgInvalidCredentials  = "Invalid credentials"
	msgRegistered          = "User registered successfully"
	msgLoggedIn            = "Login successful"

	msgTokenRequired = "Access token required"
	msgInvalidToken  = "Invalid token"

	msgCategoryRequired = "Category is required"
	msgCategoryAdded    = "Category added successfully"
	msgFieldsRequired   = "All fields are required"
	msgClothAdded       = "Cloth added successfully"
	msgClothUpdated     = "Cloth updated successfully"
	msgClothDeleted     = "Cloth deleted successfully"
	msgWardrobeNotFound = "Wardrobe not found"
	msgClothNotFound    = "Cloth not found"

	msgServerError = "Server error"

	statusOK = "ok"
)

// messageResponse is the body of every error and of plain acknowledgements.
type messageResponse struct {
	Message string `json:"message" example:"Cloth not found"`
}

func (h *Handler) message(c *gin.Context, code int, msg string) {
	c.JSON(code, messageResponse{Message: msg})
}

// bindJSONOrBadRequest binds the body into dst and answers 400 with msg on failure.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		h.message(c, http.StatusBadRequest, msg)
		return false
	}
	return true
}

// bindOptionalJSON is bindJSONOrBadRequest for bodies that may be absent: an
// empty body leaves dst zero-valued, only malformed JSON answers 400.
func (h *Handler) bindOptionalJSON(c *gin.Context, dst any, msg string) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	if h.log != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
	}
	h.message(c, http.StatusBadRequest, msg)
	return false
}

// fail maps a service error onto the status and message the API promises.
// validationMsg is the endpoint's own wording for ErrValidation.
func (h *Handler) fail(c *gin.Context, err error, validationMsg, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.message(c, http.StatusBadRequest, validationMsg)
	case errors.Is(err, service.ErrUserExists):
		h.message(c, http.StatusBadRequest, msgUserExists)
	case errors.Is(err, service.ErrInvalidCredentials):
		h.message(c, http.StatusBadRequest, msgInvalidCredentials)
	case errors.Is(err, service.ErrWardrobeNotFound):
		h.message(c, http.StatusNotFound, msgWardrobeNotFound)
	case errors.Is(err, service.ErrClothNotFound):
		h.message(c, http.StatusNotFound, msgClothNotFound)
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		h.message(c, http.StatusInternalServerError, msgServerError)
		return
	}
	if h.log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Infow(logKey, fields...)
	}
}
