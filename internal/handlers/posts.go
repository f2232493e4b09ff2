package handlers

import (
	"net/http"
	"strconv"

	"pixel_portfolio/internal/models"
	"pixel_portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// listPosts godoc
// @Summary  List posts
// @Tags     posts
// @Produce  json
// @Param    page   query int    false "page (>= 1)"
// @Param    limit  query int    false "page size (1..50)"
// @Param    status query string false "draft | published | all"
// @Success  200 {object} service.PostPage
// @Router   /posts [get]
func (h *Handler) listPosts(c *gin.Context) {
	page, limit := service.DefaultPaging()
	page = queryInt(c, "page", page)
	limit = queryInt(c, "limit", limit)

	res, err := h.services.Posts.List(c.Request.Context(), service.PostQuery{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
	})
	if err != nil {
		h.writeError(c, "posts_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) getPost(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	p, err := h.services.Posts.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "posts_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

// createPost godoc
// @Summary   Create a post
// @Tags      posts
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     input body models.PostPatch true "post"
// @Success   201 {object} map[string]any
// @Router    /posts [post]
func (h *Handler) createPost(c *gin.Context) {
	var in models.PostPatch
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	id, err := h.services.Posts.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, "posts_create_failed", err)
		return
	}
	if h.log != nil {
		h.log.Infow("post_created", "id", id, "user_id", c.GetInt64(userIDKey))
	}
	c.JSON(http.StatusCreated, gin.H{"message": "post created successfully", "id": id})
}

func (h *Handler) updatePost(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var in models.PostPatch
	if ok := h.bindJSONOrBadRequest(c, &in); !ok {
		return
	}
	if err := h.services.Posts.Update(c.Request.Context(), id, in); err != nil {
		h.writeError(c, "posts_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post updated successfully"})
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.Posts.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, "posts_delete_failed", err, "id", id)
		return
	}
	if h.log != nil {
		h.log.Infow("post_deleted", "id", id, "user_id", c.GetInt64(userIDKey))
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

// queryInt reads an integer query parameter. Absent means def; anything
// unparsable counts as 0 and is clamped by the service.
func queryInt(c *gin.Context, key string, def int) int {
	s, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
