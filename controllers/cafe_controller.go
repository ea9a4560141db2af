package controllers

import (
	"net/http"
	"strconv"

	"github.com/shivaji43/mymuseum/services"
	"github.com/shivaji43/mymuseum/utils"

	"github.com/gin-gonic/gin"
)

type CafeController struct {
	CatalogService *services.CatalogService
}

func NewCafeController(catalog *services.CatalogService) *CafeController {
	return &CafeController{CatalogService: catalog}
}

// GetAllCafes lists cafes, optionally filtered by featured, category, city,
// state or an inclusive average-price range.
func (ctrl *CafeController) GetAllCafes(c *gin.Context) {
	if c.Query("featured") == "true" {
		utils.SuccessResponse(c, http.StatusOK, "Cafes fetched successfully", ctrl.CatalogService.GetFeaturedCafes())
		return
	}
	if category := c.Query("category"); category != "" {
		utils.SuccessResponse(c, http.StatusOK, "Cafes fetched successfully", ctrl.CatalogService.GetCafesByCategory(category))
		return
	}
	if city := c.Query("city"); city != "" {
		utils.SuccessResponse(c, http.StatusOK, "Cafes fetched successfully", ctrl.CatalogService.GetCafesByCity(city))
		return
	}
	if state := c.Query("state"); state != "" {
		utils.SuccessResponse(c, http.StatusOK, "Cafes fetched successfully", ctrl.CatalogService.GetCafesByState(state))
		return
	}
	if c.Query("minPrice") != "" || c.Query("maxPrice") != "" {
		minPrice, maxPrice, ok := parsePriceRange(c)
		if !ok {
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Cafes fetched successfully", ctrl.CatalogService.GetCafesByPriceRange(minPrice, maxPrice))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cafes fetched successfully", ctrl.CatalogService.GetCafes())
}

func (ctrl *CafeController) GetCafeByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid cafe id")
		return
	}
	cafe, ok := ctrl.CatalogService.GetCafeByID(id)
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "Cafe not found")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cafe fetched successfully", cafe)
}

func (ctrl *CafeController) SearchCafes(c *gin.Context) {
	cafes := ctrl.CatalogService.SearchCafes(c.Query("q"))
	utils.SuccessResponse(c, http.StatusOK, "Cafes fetched successfully", cafes)
}

func (ctrl *CafeController) GetCafeCities(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Cities fetched successfully", ctrl.CatalogService.GetCafeCities())
}

func (ctrl *CafeController) GetCafeStates(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "States fetched successfully", ctrl.CatalogService.GetCafeStates())
}
