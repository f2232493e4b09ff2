package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type settingInput struct {
	Value *string `json:"value"`
}

// listSettings godoc
// @Summary  All site settings as a key/value map
// @Tags     settings
// @Produce  json
// @Success  200 {object} map[string]any
// @Router   /settings [get]
func (h *Handler) listSettings(c *gin.Context) {
	all, err := h.services.Settings.All(c.Request.Context())
	if err != nil {
		h.writeError(c, "settings_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": all})
}

func (h *Handler) getSetting(c *gin.Context) {
	s, err := h.services.Settings.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.writeError(c, "settings_get_failed", err, "key", c.Param("key"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s})
}

// putSetting godoc
// @Summary   Create or replace a setting
// @Tags      settings
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     key   path string       true "setting key"
// @Param     input body settingInput true "value"
// @Success   200 {object} map[string]string
// @Router    /settings/{key} [put]
func (h *Handler) putSetting(c *gin.Context) {
	var in settingInput
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	key := c.Param("key")
	if err := h.services.Settings.Put(c.Request.Context(), key, in.Value); err != nil {
		h.writeError(c, "settings_put_failed", err, "key", key)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "setting updated successfully"})
}
