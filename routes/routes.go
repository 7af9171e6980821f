package routes

import (
	"wayfarer/auth"
	"wayfarer/autocom"
	"wayfarer/itinerary"
	"wayfarer/middleware"
	"wayfarer/ratelim"
	"wayfarer/userdata"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.POST("/api/itineraries", ratelim.RateLimit(middleware.Authenticate(itinerary.GenerateItinerary)))
	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetUserItineraries))
	router.GET("/api/itineraries/all/:id", middleware.OptionalAuth(itinerary.GetItinerary))
	router.GET("/api/itineraries/all/:id/download", middleware.OptionalAuth(itinerary.DownloadItinerary))
	router.GET("/api/itineraries/all/:id/qr", middleware.Authenticate(itinerary.ShareQRCode))
	router.GET("/api/itineraries/shared/:shareId", itinerary.GetSharedItinerary)
	router.PUT("/api/itineraries/:id", middleware.Authenticate(itinerary.UpdateItinerary))
	router.DELETE("/api/itineraries/:id", middleware.Authenticate(itinerary.DeleteItinerary))
	router.POST("/api/itineraries/:id/share", middleware.Authenticate(itinerary.ShareItinerary))
}

func AddCityRoutes(router *httprouter.Router) {
	router.GET("/api/cities/search", ratelim.RateLimit(autocom.SearchCities))
}

func AddUserDataRoutes(router *httprouter.Router) {
	router.GET("/api/user/data", middleware.Authenticate(userdata.GetUserProfileData))
}
