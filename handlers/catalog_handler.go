package handlers

import (
	"github.com/shivaji43/mymuseum/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMuseumRoutes(router *gin.RouterGroup, museumController *controllers.MuseumController) {
	museumGroup := router.Group("/museums")
	{
		museumGroup.GET("/", museumController.GetAllMuseums)
		museumGroup.GET("/search", museumController.SearchMuseums)
		museumGroup.GET("/cities", museumController.GetMuseumCities)
		museumGroup.GET("/states", museumController.GetMuseumStates)
		museumGroup.GET("/:id", museumController.GetMuseumByID)
	}
}

func RegisterCafeRoutes(router *gin.RouterGroup, cafeController *controllers.CafeController) {
	cafeGroup := router.Group("/cafes")
	{
		cafeGroup.GET("/", cafeController.GetAllCafes)
		cafeGroup.GET("/search", cafeController.SearchCafes)
		cafeGroup.GET("/cities", cafeController.GetCafeCities)
		cafeGroup.GET("/states", cafeController.GetCafeStates)
		cafeGroup.GET("/:id", cafeController.GetCafeByID)
	}
}

func RegisterShowRoutes(router *gin.RouterGroup, showController *controllers.ShowController) {
	showGroup := router.Group("/shows")
	{
		showGroup.GET("/", showController.GetAllShows)
		showGroup.GET("/search", showController.SearchShows)
		showGroup.GET("/cities", showController.GetShowCities)
		showGroup.GET("/states", showController.GetShowStates)
		showGroup.GET("/:id", showController.GetShowByID)
	}
}

func RegisterVenueRoutes(router *gin.RouterGroup, venueController *controllers.VenueController) {
	venueGroup := router.Group("/venues")
	{
		venueGroup.GET("/search", venueController.SearchAllVenues)
		venueGroup.GET("/featured", venueController.GetFeaturedVenues)
	}
}
