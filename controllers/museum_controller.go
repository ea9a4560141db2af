package controllers

import (
	"net/http"
	"strconv"

	"github.com/shivaji43/mymuseum/services"
	"github.com/shivaji43/mymuseum/utils"

	"github.com/gin-gonic/gin"
)

type MuseumController struct {
	CatalogService *services.CatalogService
}

func NewMuseumController(catalog *services.CatalogService) *MuseumController {
	return &MuseumController{CatalogService: catalog}
}

// GetAllMuseums lists museums, optionally filtered by featured, category,
// city, state or an inclusive price range.
func (ctrl *MuseumController) GetAllMuseums(c *gin.Context) {
	if c.Query("featured") == "true" {
		utils.SuccessResponse(c, http.StatusOK, "Museums fetched successfully", ctrl.CatalogService.GetFeaturedMuseums())
		return
	}
	if category := c.Query("category"); category != "" {
		utils.SuccessResponse(c, http.StatusOK, "Museums fetched successfully", ctrl.CatalogService.GetMuseumsByCategory(category))
		return
	}
	if city := c.Query("city"); city != "" {
		utils.SuccessResponse(c, http.StatusOK, "Museums fetched successfully", ctrl.CatalogService.GetMuseumsByCity(city))
		return
	}
	if state := c.Query("state"); state != "" {
		utils.SuccessResponse(c, http.StatusOK, "Museums fetched successfully", ctrl.CatalogService.GetMuseumsByState(state))
		return
	}
	if c.Query("minPrice") != "" || c.Query("maxPrice") != "" {
		minPrice, maxPrice, ok := parsePriceRange(c)
		if !ok {
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Museums fetched successfully", ctrl.CatalogService.GetMuseumsByPriceRange(minPrice, maxPrice))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Museums fetched successfully", ctrl.CatalogService.GetMuseums())
}

func (ctrl *MuseumController) GetMuseumByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid museum id")
		return
	}
	museum, ok := ctrl.CatalogService.GetMuseumByID(id)
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "Museum not found")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Museum fetched successfully", museum)
}

func (ctrl *MuseumController) SearchMuseums(c *gin.Context) {
	museums := ctrl.CatalogService.SearchMuseums(c.Query("q"))
	utils.SuccessResponse(c, http.StatusOK, "Museums fetched successfully", museums)
}

func (ctrl *MuseumController) GetMuseumCities(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Cities fetched successfully", ctrl.CatalogService.GetMuseumCities())
}

func (ctrl *MuseumController) GetMuseumStates(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "States fetched successfully", ctrl.CatalogService.GetMuseumStates())
}

// parsePriceRange reads minPrice and maxPrice query params, writing a 400
// when either is missing or not numeric.
func parsePriceRange(c *gin.Context) (float64, float64, bool) {
	minPrice, err := strconv.ParseFloat(c.Query("minPrice"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid minPrice")
		return 0, 0, false
	}
	maxPrice, err := strconv.ParseFloat(c.Query("maxPrice"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid maxPrice")
		return 0, 0, false
	}
	return minPrice, maxPrice, true
}
