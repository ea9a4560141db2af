package controllers

import (
	"net/http"
	"strconv"

	"github.com/shivaji43/mymuseum/services"
	"github.com/shivaji43/mymuseum/utils"

	"github.com/gin-gonic/gin"
)

type ShowController struct {
	CatalogService *services.CatalogService
}

func NewShowController(catalog *services.CatalogService) *ShowController {
	return &ShowController{CatalogService: catalog}
}

// GetAllShows lists shows, optionally filtered by featured, category, city,
// state or an inclusive ticket-price range.
func (ctrl *ShowController) GetAllShows(c *gin.Context) {
	if c.Query("featured") == "true" {
		utils.SuccessResponse(c, http.StatusOK, "Shows fetched successfully", ctrl.CatalogService.GetFeaturedShows())
		return
	}
	if category := c.Query("category"); category != "" {
		utils.SuccessResponse(c, http.StatusOK, "Shows fetched successfully", ctrl.CatalogService.GetShowsByCategory(category))
		return
	}
	if city := c.Query("city"); city != "" {
		utils.SuccessResponse(c, http.StatusOK, "Shows fetched successfully", ctrl.CatalogService.GetShowsByCity(city))
		return
	}
	if state := c.Query("state"); state != "" {
		utils.SuccessResponse(c, http.StatusOK, "Shows fetched successfully", ctrl.CatalogService.GetShowsByState(state))
		return
	}
	if c.Query("minPrice") != "" || c.Query("maxPrice") != "" {
		minPrice, maxPrice, ok := parsePriceRange(c)
		if !ok {
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Shows fetched successfully", ctrl.CatalogService.GetShowsByPriceRange(minPrice, maxPrice))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Shows fetched successfully", ctrl.CatalogService.GetShows())
}

func (ctrl *ShowController) GetShowByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid show id")
		return
	}
	show, ok := ctrl.CatalogService.GetShowByID(id)
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "Show not found")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Show fetched successfully", show)
}

func (ctrl *ShowController) SearchShows(c *gin.Context) {
	shows := ctrl.CatalogService.SearchShows(c.Query("q"))
	utils.SuccessResponse(c, http.StatusOK, "Shows fetched successfully", shows)
}

func (ctrl *ShowController) GetShowCities(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Cities fetched successfully", ctrl.CatalogService.GetShowCities())
}

func (ctrl *ShowController) GetShowStates(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "States fetched successfully", ctrl.CatalogService.GetShowStates())
}
