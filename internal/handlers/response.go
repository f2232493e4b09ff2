package handlers

import (
	"net/http"
	"strconv"

	"pixel_portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "invalid request body"

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		msg := msgInvalidBody
		if h.debug {
			msg += ": " + err.Error()
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": msg,
			"code":  service.KindValidation,
		})
		return false
	}
	return true
}

// writeError maps err to its status and a client-safe message. Causes of
// internal errors are only exposed when the handler runs in debug mode.
func (h *Handler) writeError(c *gin.Context, event string, err error, kv ...any) {
	se := service.AsError(err)
	msg := se.Message
	if se.Kind == service.KindInternal && h.debug && se.Err != nil {
		msg += ": " + se.Err.Error()
	}

	if h.log != nil {
		kv = append(kv, "kind", se.Kind, "err", err)
		if se.Kind == service.KindInternal {
			h.log.Errorw(event, kv...)
		} else {
			h.log.Infow(event, kv...)
		}
	}

	c.AbortWithStatusJSON(se.Status(), gin.H{
		"error": msg,
		"code":  se.Kind,
	})
}

// pathID parses a positive integer path parameter; writes 400 otherwise.
func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(c, "bad_path_id", &service.Error{
			Kind:    service.KindValidation,
			Message: "invalid id",
		}, "id", c.Param("id"))
		return 0, false
	}
	return id, true
}
