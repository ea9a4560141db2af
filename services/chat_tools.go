package services

import (
	"encoding/json"
	"log"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

func catalogTool(name, description string, properties map[string]jsonschema.Definition, required []string) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: properties,
				Required:   required,
			},
		},
	}
}

func queryParam(description string) map[string]jsonschema.Definition {
	return map[string]jsonschema.Definition{
		"query": {Type: jsonschema.String, Description: description},
	}
}

func categoryParam(description string) map[string]jsonschema.Definition {
	return map[string]jsonschema.Definition{
		"category": {Type: jsonschema.String, Description: description},
	}
}

func cityParam() map[string]jsonschema.Definition {
	return map[string]jsonschema.Definition{
		"city": {Type: jsonschema.String, Description: "City name (e.g., Delhi, Mumbai, Kolkata)"},
	}
}

func priceRangeParams(minDesc, maxDesc string) map[string]jsonschema.Definition {
	return map[string]jsonschema.Definition{
		"minPrice": {Type: jsonschema.Number, Description: minDesc},
		"maxPrice": {Type: jsonschema.Number, Description: maxDesc},
	}
}

// ChatTools declares the fixed roster of functions the model may call. Every
// entry maps one-to-one onto a case in executeTool.
func ChatTools() []openai.Tool {
	return []openai.Tool{
		catalogTool("searchMuseums",
			"Search for museums by name, location, or description. Use this when users ask about museums.",
			queryParam("Search query for museums"), []string{"query"}),
		catalogTool("searchCafes",
			"Search for cafes by name, location, cuisine, or description. Use this when users ask about cafes or restaurants.",
			queryParam("Search query for cafes"), []string{"query"}),
		catalogTool("searchShows",
			"Search for shows by name, venue, location, genre, or description. Use this when users ask about performances or shows.",
			queryParam("Search query for shows"), []string{"query"}),
		catalogTool("getMuseumsByCategory",
			"Get museums filtered by category (Art, History, Science, or all)",
			categoryParam("Category of museums (Art, History, Science, all)"), []string{"category"}),
		catalogTool("getCafesByCategory",
			"Get cafes filtered by category (Traditional, Modern, Heritage, or all)",
			categoryParam("Category of cafes (Traditional, Modern, Heritage, all)"), []string{"category"}),
		catalogTool("getShowsByCategory",
			"Get shows filtered by category (Theater, Concert, Classical, Folk, or all)",
			categoryParam("Category of shows (Theater, Concert, Classical, Folk, all)"), []string{"category"}),
		catalogTool("getFeaturedMuseums",
			"Get featured/popular museums. Use when asking for recommendations or popular options.",
			nil, nil),
		catalogTool("getFeaturedCafes",
			"Get featured/popular cafes. Use when asking for recommendations or popular options.",
			nil, nil),
		catalogTool("getFeaturedShows",
			"Get featured/popular shows. Use when asking for recommendations or popular options.",
			nil, nil),
		catalogTool("getMuseumCities",
			"Get list of cities that have museums in our database", nil, nil),
		catalogTool("getCafeCities",
			"Get list of cities that have cafes in our database", nil, nil),
		catalogTool("getShowCities",
			"Get list of cities that have shows in our database", nil, nil),
		catalogTool("getMuseumsByCity",
			"Get all museums in a specific city", cityParam(), []string{"city"}),
		catalogTool("getCafesByCity",
			"Get all cafes in a specific city", cityParam(), []string{"city"}),
		catalogTool("getShowsByCity",
			"Get all shows in a specific city", cityParam(), []string{"city"}),
		catalogTool("getMuseumsByPriceRange",
			"Get museums within a specific price range",
			priceRangeParams("Minimum price in rupees", "Maximum price in rupees"),
			[]string{"minPrice", "maxPrice"}),
		catalogTool("getCafesByPriceRange",
			"Get cafes within a specific average price range",
			priceRangeParams("Minimum average price in rupees", "Maximum average price in rupees"),
			[]string{"minPrice", "maxPrice"}),
		catalogTool("getShowsByPriceRange",
			"Get shows within a specific ticket price range",
			priceRangeParams("Minimum ticket price in rupees", "Maximum ticket price in rupees"),
			[]string{"minPrice", "maxPrice"}),
		catalogTool("createMuseumBooking",
			"Create a booking link for a museum visit when the user wants to book a specific museum",
			map[string]jsonschema.Definition{
				"museumId": {Type: jsonschema.Integer, Description: "ID of the museum to book"},
				"date":     {Type: jsonschema.String, Description: "Selected date for the visit in YYYY-MM-DD format"},
				"quantity": {Type: jsonschema.Integer, Description: "Number of tickets to book"},
			}, []string{"museumId"}),
		catalogTool("createCafeBooking",
			"Create a booking link for a cafe reservation when the user wants to reserve a table",
			map[string]jsonschema.Definition{
				"cafeId":   {Type: jsonschema.Integer, Description: "ID of the cafe to book"},
				"date":     {Type: jsonschema.String, Description: "Selected date for the reservation in YYYY-MM-DD format"},
				"quantity": {Type: jsonschema.Integer, Description: "Number of people in the party"},
				"timeSlot": {Type: jsonschema.String, Description: "Selected time slot for the reservation"},
			}, []string{"cafeId"}),
		catalogTool("createShowBooking",
			"Create a booking link for show tickets when the user wants to book a show",
			map[string]jsonschema.Definition{
				"showId":   {Type: jsonschema.Integer, Description: "ID of the show to book"},
				"date":     {Type: jsonschema.String, Description: "Selected date for the show in YYYY-MM-DD format"},
				"quantity": {Type: jsonschema.Integer, Description: "Number of tickets to book"},
				"showtime": {Type: jsonschema.String, Description: "Selected showtime for the show"},
			}, []string{"showId"}),
	}
}

type searchArgs struct {
	Query string `json:"query"`
}

type categoryArgs struct {
	Category string `json:"category"`
}

type cityArgs struct {
	City string `json:"city"`
}

type priceRangeArgs struct {
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

type museumBookingArgs struct {
	MuseumID int    `json:"museumId"`
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

type cafeBookingArgs struct {
	CafeID   int    `json:"cafeId"`
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
	TimeSlot string `json:"timeSlot"`
}

type showBookingArgs struct {
	ShowID   int    `json:"showId"`
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
	Showtime string `json:"showtime"`
}

// executeTool dispatches one tool call against the catalog and booking
// services. It always returns a JSON payload for the model: unknown tools
// and malformed arguments come back as structured errors, never as Go
// errors that would abort the chat turn.
func (s *ChatService) executeTool(name, rawArgs string) string {
	log.Printf("Executing tool %s with args %s", name, rawArgs)

	switch name {
	case "searchMuseums":
		var args searchArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		museums := s.CatalogService.SearchMuseums(args.Query)
		return toolResult(map[string]interface{}{"museums": museums, "count": len(museums)})
	case "searchCafes":
		var args searchArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		cafes := s.CatalogService.SearchCafes(args.Query)
		return toolResult(map[string]interface{}{"cafes": cafes, "count": len(cafes)})
	case "searchShows":
		var args searchArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		shows := s.CatalogService.SearchShows(args.Query)
		return toolResult(map[string]interface{}{"shows": shows, "count": len(shows)})
	case "getMuseumsByCategory":
		var args categoryArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		museums := s.CatalogService.GetMuseumsByCategory(args.Category)
		return toolResult(map[string]interface{}{"museums": museums, "count": len(museums)})
	case "getCafesByCategory":
		var args categoryArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		cafes := s.CatalogService.GetCafesByCategory(args.Category)
		return toolResult(map[string]interface{}{"cafes": cafes, "count": len(cafes)})
	case "getShowsByCategory":
		var args categoryArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		shows := s.CatalogService.GetShowsByCategory(args.Category)
		return toolResult(map[string]interface{}{"shows": shows, "count": len(shows)})
	case "getFeaturedMuseums":
		museums := s.CatalogService.GetFeaturedMuseums()
		return toolResult(map[string]interface{}{"museums": museums, "count": len(museums)})
	case "getFeaturedCafes":
		cafes := s.CatalogService.GetFeaturedCafes()
		return toolResult(map[string]interface{}{"cafes": cafes, "count": len(cafes)})
	case "getFeaturedShows":
		shows := s.CatalogService.GetFeaturedShows()
		return toolResult(map[string]interface{}{"shows": shows, "count": len(shows)})
	case "getMuseumCities":
		cities := s.CatalogService.GetMuseumCities()
		return toolResult(map[string]interface{}{"cities": cities, "count": len(cities)})
	case "getCafeCities":
		cities := s.CatalogService.GetCafeCities()
		return toolResult(map[string]interface{}{"cities": cities, "count": len(cities)})
	case "getShowCities":
		cities := s.CatalogService.GetShowCities()
		return toolResult(map[string]interface{}{"cities": cities, "count": len(cities)})
	case "getMuseumsByCity":
		var args cityArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		museums := s.CatalogService.GetMuseumsByCity(args.City)
		return toolResult(map[string]interface{}{"museums": museums, "count": len(museums)})
	case "getCafesByCity":
		var args cityArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		cafes := s.CatalogService.GetCafesByCity(args.City)
		return toolResult(map[string]interface{}{"cafes": cafes, "count": len(cafes)})
	case "getShowsByCity":
		var args cityArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		shows := s.CatalogService.GetShowsByCity(args.City)
		return toolResult(map[string]interface{}{"shows": shows, "count": len(shows)})
	case "getMuseumsByPriceRange":
		var args priceRangeArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		museums := s.CatalogService.GetMuseumsByPriceRange(args.MinPrice, args.MaxPrice)
		return toolResult(map[string]interface{}{"museums": museums, "count": len(museums)})
	case "getCafesByPriceRange":
		var args priceRangeArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		cafes := s.CatalogService.GetCafesByPriceRange(args.MinPrice, args.MaxPrice)
		return toolResult(map[string]interface{}{"cafes": cafes, "count": len(cafes)})
	case "getShowsByPriceRange":
		var args priceRangeArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		shows := s.CatalogService.GetShowsByPriceRange(args.MinPrice, args.MaxPrice)
		return toolResult(map[string]interface{}{"shows": shows, "count": len(shows)})
	case "createMuseumBooking":
		var args museumBookingArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		return toolResult(s.BookingService.CreateMuseumBooking(args.MuseumID, args.Date, args.Quantity))
	case "createCafeBooking":
		var args cafeBookingArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		return toolResult(s.BookingService.CreateCafeBooking(args.CafeID, args.Date, args.Quantity, args.TimeSlot))
	case "createShowBooking":
		var args showBookingArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
		return toolResult(s.BookingService.CreateShowBooking(args.ShowID, args.Date, args.Quantity, args.Showtime))
	default:
		return toolError("unknown tool: " + name)
	}
}

func toolResult(payload interface{}) string {
	b, err := json.Marshal(payload)
	if err != nil {
		return toolError("failed to encode tool result")
	}
	return string(b)
}

func toolError(message string) string {
	b, _ := json.Marshal(map[string]string{"error": message})
	return string(b)
}
