package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartcare/smartcare-api/internal/matching"
	"github.com/smartcare/smartcare-api/internal/store"
)

// ListProviders returns the full directory.
func (h *Handler) ListProviders(c *gin.Context) {
	providers, err := h.Store.ListProviders(c.Request.Context())
	if err != nil {
		h.Logger.Error().Err(err).Msg("list providers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, providers)
}

// MatchProviders ranks the directory against symptoms, insurance, and
// location, and returns the top matches with scores and reasons. Scoring
// never surfaces as an error to the client: if the scoring pass fails, the
// first providers from the directory are returned unscored.
func (h *Handler) MatchProviders(c *gin.Context) {
	limit := matching.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	query := matching.Query{
		Symptoms:  c.Query("symptoms"),
		Insurance: c.Query("insurance"),
		Location:  c.Query("location"),
		Urgency:   c.Query("urgency"),
		Limit:     limit,
	}

	directory, err := h.Store.ListProviders(c.Request.Context())
	if err != nil {
		h.Logger.Error().Err(err).Msg("match: directory read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	matches, err := matching.Rank(directory, query)
	if err != nil {
		h.Logger.Error().Err(err).Msg("match: scoring failed, serving unscored fallback")
		matches = matching.Fallback(directory, limit)
	}

	c.JSON(http.StatusOK, matches)
}

// GetProvider returns one directory entry by id.
func (h *Handler) GetProvider(c *gin.Context) {
	provider, err := h.Store.GetProviderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		h.Logger.Error().Err(err).Msg("get provider failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, provider)
}
