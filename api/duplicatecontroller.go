package api

import (
	"net/http"

	"briefbot/dedup"
	"briefbot/types"

	"github.com/gin-gonic/gin"
)

// RegisterDuplicateRoutes registers research-article deduplication endpoints.
func RegisterDuplicateRoutes(r *gin.Engine) {
	g := r.Group("/api/duplicates")
	g.POST("", handleFindDuplicates)
	g.POST("/collapse", handleCollapseDuplicates)
}

// DuplicatesRequest carries the article announcements to examine.
type DuplicatesRequest struct {
	Articles                 []*types.MedArticle `json:"articles" binding:"required"`
	TitleSimilarityThreshold float64             `json:"title_similarity_threshold"`
}

// DuplicatesResponse maps each group key to the member article IDs.
type DuplicatesResponse struct {
	GroupCount int                 `json:"group_count"`
	Groups     map[string][]string `json:"groups"`
}

// CollapseResponse returns one surviving record per duplicate group.
type CollapseResponse struct {
	SurvivorCount int                 `json:"survivor_count"`
	Survivors     []*types.MedArticle `json:"survivors"`
}

func handleFindDuplicates(c *gin.Context) {
	var req DuplicatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d := dedup.NewDeduper(dedup.Config{TitleSimilarityThreshold: req.TitleSimilarityThreshold})
	groups := d.FindDuplicateGroups(req.Articles)

	c.JSON(http.StatusOK, DuplicatesResponse{
		GroupCount: len(groups),
		Groups:     groups,
	})
}

func handleCollapseDuplicates(c *gin.Context) {
	var req DuplicatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d := dedup.NewDeduper(dedup.Config{TitleSimilarityThreshold: req.TitleSimilarityThreshold})
	survivors := d.Collapse(req.Articles)

	c.JSON(http.StatusOK, CollapseResponse{
		SurvivorCount: len(survivors),
		Survivors:     survivors,
	})
}
