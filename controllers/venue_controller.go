package controllers

import (
	"net/http"
	"strconv"

	"github.com/shivaji43/mymuseum/services"
	"github.com/shivaji43/mymuseum/utils"

	"github.com/gin-gonic/gin"
)

// VenueController serves the cross-type views: combined search and random
// featured picks for the homepage.
type VenueController struct {
	CatalogService *services.CatalogService
}

func NewVenueController(catalog *services.CatalogService) *VenueController {
	return &VenueController{CatalogService: catalog}
}

func (ctrl *VenueController) SearchAllVenues(c *gin.Context) {
	venues := ctrl.CatalogService.SearchAllVenues(c.Query("q"))
	utils.SuccessResponse(c, http.StatusOK, "Venues fetched successfully", venues)
}

func (ctrl *VenueController) GetFeaturedVenues(c *gin.Context) {
	count := 3
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid count")
			return
		}
		count = parsed
	}
	utils.SuccessResponse(c, http.StatusOK, "Featured venues fetched successfully", ctrl.CatalogService.RandomFeaturedVenues(count))
}
