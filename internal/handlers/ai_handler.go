package handlers

import (
	"io"
	"net/http"

	"github.com/campuskart/backend/pkg/ai"
	"github.com/labstack/echo/v4"
)

// AIHandler proxies listing images to the Gemini analyzer
type AIHandler struct {
	analyzer *ai.Analyzer
}

// NewAIHandler creates a new AIHandler. A nil analyzer means no API key was
// configured; requests then fail with 503.
func NewAIHandler(analyzer *ai.Analyzer) *AIHandler {
	return &AIHandler{analyzer: analyzer}
}

// GenerateDescription analyzes a product photo and returns a suggested
// description, price range and confidence score
func (h *AIHandler) GenerateDescription(c echo.Context) error {
	if h.analyzer == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "AI analysis is not configured")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No image uploaded")
	}
	productName := c.FormValue("product_name")
	condition := c.FormValue("condition")
	if productName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_name is required")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read image")
	}
	defer src.Close()

	image, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read image")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	analysis, err := h.analyzer.AnalyzeListing(c.Request().Context(), image, mimeType, productName, condition)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to generate AI analysis: "+err.Error())
	}
	return c.JSON(http.StatusOK, analysis)
}
