package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"social-vault/pkg/logger"
	"social-vault/pkg/middleware"
	"social-vault/services/content/internal/entity"
	"social-vault/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	feedUseCase  usecase.FeedUseCase
	logger       *logger.Logger
	defaultLimit int
}

func NewContentHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger, defaultLimit int) *ContentHandler {
	return &ContentHandler{
		feedUseCase:  feedUseCase,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

// Root godoc
// @Summary      API banner
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *ContentHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Content Platform API"})
}

// ListContent godoc
// @Summary      Get content feed
// @Description  Newest first. Items that are not free come back locked with an empty media_urls list.
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        skip query int false "Number of items to skip"
// @Param        limit query int false "Number of items to return (clamped to the configured maximum)"
// @Param        creator_id query string false "Only return items from this creator"
// @Success      200  {array}   entity.ContentProjection
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /content [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	page, err := h.parsePage(c)
	if err != nil {
		h.respondError(c, err, "list content")
		return
	}

	filter := entity.ContentFilter{CreatorID: c.Query("creator_id")}
	items, err := h.feedUseCase.GetFeed(c.Request.Context(), viewerFrom(c), filter, page)
	if err != nil {
		h.respondError(c, err, "list content")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetContent godoc
// @Summary      Get content item
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Content ID"
// @Success      200  {object}  entity.ContentProjection
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /content/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	item, err := h.feedUseCase.GetContent(c.Request.Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "get content")
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListCreators godoc
// @Summary      List creators
// @Tags         creators
// @Produce      json
// @Success      200  {array}   entity.Creator
// @Failure      503  {object}  map[string]string
// @Router       /creators [get]
func (h *ContentHandler) ListCreators(c *gin.Context) {
	creators, err := h.feedUseCase.ListCreators(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "list creators")
		return
	}

	c.JSON(http.StatusOK, creators)
}

// GetCreatorContent godoc
// @Summary      Get a creator's content
// @Description  Same as the content feed with creator_id taken from the path. Unknown creators give an empty list.
// @Tags         creators
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Creator ID"
// @Param        skip query int false "Number of items to skip"
// @Param        limit query int false "Number of items to return"
// @Success      200  {array}   entity.ContentProjection
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /creators/{id}/content [get]
func (h *ContentHandler) GetCreatorContent(c *gin.Context) {
	page, err := h.parsePage(c)
	if err != nil {
		h.respondError(c, err, "list creator content")
		return
	}

	items, err := h.feedUseCase.GetCreatorContent(c.Request.Context(), viewerFrom(c), c.Param("id"), page)
	if err != nil {
		h.respondError(c, err, "list creator content")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) parsePage(c *gin.Context) (entity.Page, error) {
	page := entity.Page{Skip: 0, Limit: h.defaultLimit}

	if skipStr, ok := c.GetQuery("skip"); ok {
		skip, err := strconv.Atoi(skipStr)
		if err != nil || skip < 0 {
			return page, fmt.Errorf("%w: skip must be a non-negative integer", entity.ErrValidation)
		}
		page.Skip = skip
	}

	if limitStr, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return page, fmt.Errorf("%w: limit must be a positive integer", entity.ErrValidation)
		}
		page.Limit = limit
	}

	return page, nil
}

func (h *ContentHandler) respondError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
	case errors.Is(err, entity.ErrStoreUnavailable):
		h.logger.Error("Failed to %s: %v", op, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		h.logger.Error("Failed to %s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func viewerFrom(c *gin.Context) entity.Viewer {
	return entity.Viewer{
		ID:   c.GetString(middleware.ContextUserID),
		Role: c.GetString(middleware.ContextRole),
	}
}
