package api

import (
	"net/http"
	"time"

	"briefbot/rssfeeds"
	"briefbot/types"

	"github.com/gin-gonic/gin"
)

// RegisterFeedRoutes registers feed fetching endpoints.
func RegisterFeedRoutes(r *gin.Engine) {
	g := r.Group("/api/feeds")
	g.GET("", handleListFeeds)
	g.POST("/fetch", handleFetchFeed)
}

// FetchFeedRequest identifies a feed preset or direct URL to fetch.
type FetchFeedRequest struct {
	Feed  string `json:"feed" binding:"required"`
	Count int    `json:"count"`
}

func handleListFeeds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": rssfeeds.FeedPresets})
}

func handleFetchFeed(c *gin.Context) {
	var req FetchFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count := req.Count
	if count <= 0 {
		count = 20
	}

	cfg := rssfeeds.ResolveFeed(req.Feed)
	items, err := rssfeeds.FetchFeed(cfg.URL, cfg.Name, count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch feed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.FeedResult{
		FeedURL:   cfg.URL,
		Source:    cfg.Name,
		Category:  cfg.Category,
		FetchedAt: time.Now(),
		ItemCount: len(items),
		Items:     items,
	})
}
