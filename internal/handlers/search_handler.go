package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/services"
)

type SearchHandler struct {
	*BaseHandler
	searchService *services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{BaseHandler: base, searchService: searchService}
}

// Search runs the global quick search across customers, trainers and
// trainings.
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.searchService.Search(c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
