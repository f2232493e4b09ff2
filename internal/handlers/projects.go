package handlers

import (
	"net/http"

	"pixel_portfolio/internal/models"

	"github.com/gin-gonic/gin"
)

// listProjects godoc
// @Summary  List projects ordered by display_order
// @Tags     projects
// @Produce  json
// @Param    status query string false "active | archived | all"
// @Success  200 {object} map[string]any
// @Router   /projects [get]
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.services.Projects.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.writeError(c, "projects_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": projects})
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	p, err := h.services.Projects.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "projects_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (h *Handler) createProject(c *gin.Context) {
	var in models.ProjectPatch
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	id, err := h.services.Projects.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, "projects_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "project created successfully", "id": id})
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var in models.ProjectPatch
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	if err := h.services.Projects.Update(c.Request.Context(), id, in); err != nil {
		h.writeError(c, "projects_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project updated successfully"})
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.Projects.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, "projects_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}
