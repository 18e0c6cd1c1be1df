package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/catalog"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/dto"
)

// MockupHandler simulates the print-provider mockup generator. The real
// preview is composited client-side; this endpoint validates the request
// and echoes the placement config, as the original storefront did before a
// provider API key is configured.
type MockupHandler struct{}

func NewMockupHandler() *MockupHandler {
	return &MockupHandler{}
}

func (h *MockupHandler) Generate(c *gin.Context) {
	var req dto.MockupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product ID and design URL are required"})
		return
	}

	if product, _ := catalog.ProductByID(req.ProductID); product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, dto.MockupResponse{
		Status:    "completed",
		MockupURL: nil,
		Message:   "mockup generation simulated",
		Config:    dto.MockupConfig{Scale: req.Scale, Position: req.Position},
	})
}
