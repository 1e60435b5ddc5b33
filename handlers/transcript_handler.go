package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentType is sent with every transcript response.
const ContentType = "text/html; charset=utf-8"

// TranscriptHandler serves a fixed HTML document
type TranscriptHandler struct {
	page []byte
}

// NewTranscriptHandler creates a handler that always answers with page.
// The slice is written as-is and never modified.
func NewTranscriptHandler(page []byte) *TranscriptHandler {
	return &TranscriptHandler{
		page: page,
	}
}

// Register binds the handler at the server root
func (h *TranscriptHandler) Register(r gin.IRoutes) {
	r.GET("/", h.Show)
	r.HEAD("/", h.Show)
}

// Show handles GET and HEAD /. Nothing from the request is read.
func (h *TranscriptHandler) Show(c *gin.Context) {
	c.Data(http.StatusOK, ContentType, h.page)
}
