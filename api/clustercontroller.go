package api

import (
	"net/http"

	"briefbot/clustering"
	"briefbot/config"
	"briefbot/headline"
	"briefbot/types"

	"github.com/gin-gonic/gin"
)

// RegisterClusterRoutes registers clustering endpoints.
func RegisterClusterRoutes(r *gin.Engine) {
	g := r.Group("/api/cluster")
	g.POST("", handleClusterItems)
}

// ClusterRequest carries the items of one logical partition (category) to
// cluster. Explicit thresholds override the category table when set.
type ClusterRequest struct {
	Items               []*types.NewsItem `json:"items" binding:"required"`
	Category            string            `json:"category"`
	SimilarityThreshold float64           `json:"similarity_threshold"`
	MinPairSimilarity   float64           `json:"min_pair_similarity"`
}

// ClusterResponse returns the ranked clusters for the submitted items.
type ClusterResponse struct {
	Category     string          `json:"category"`
	ClusterCount int             `json:"cluster_count"`
	Clusters     []types.Cluster `json:"clusters"`
}

// handleClusterItems clusters the submitted items. The endpoint is stateless:
// every request reclusters from scratch, so repeated calls with the same body
// return identical results.
func handleClusterItems(c *gin.Context) {
	var req ClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := config.ThresholdsFor(req.Category)
	if req.SimilarityThreshold > 0 {
		cfg.SimilarityThreshold = req.SimilarityThreshold
	}
	if req.MinPairSimilarity > 0 {
		cfg.MinPairSimilarity = req.MinPairSimilarity
	}
	if cfg.SimilarityThreshold >= 1 || cfg.MinPairSimilarity >= 1 || cfg.SimilarityThreshold < cfg.MinPairSimilarity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "thresholds must lie in (0,1) with similarity_threshold >= min_pair_similarity"})
		return
	}

	clusters := clustering.ClusterNewsItems(req.Items, cfg, headline.Passthrough{})

	c.JSON(http.StatusOK, ClusterResponse{
		Category:     req.Category,
		ClusterCount: len(clusters),
		Clusters:     clusters,
	})
}
