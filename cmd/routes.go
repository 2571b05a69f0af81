package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("seeker"))
	ownerAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("owner"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/log_out", authMiddleware.ThenFunc(app.userHandler.LogOut))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.GetMe))
	mux.Put("/user/preferences", authMiddleware.ThenFunc(app.userHandler.UpdatePreferences))

	// Listings
	mux.Get("/listings/search", standardMiddleware.ThenFunc(app.listingHandler.SearchListings))
	mux.Get("/listings/mine", ownerAuthMiddleware.ThenFunc(app.listingHandler.GetMyListings))
	mux.Get("/listings/:id", standardMiddleware.ThenFunc(app.listingHandler.GetListingByID))
	mux.Post("/listings", ownerAuthMiddleware.ThenFunc(app.listingHandler.CreateListing))
	mux.Put("/listings/:id", ownerAuthMiddleware.ThenFunc(app.listingHandler.UpdateListing))
	mux.Del("/listings/:id", ownerAuthMiddleware.ThenFunc(app.listingHandler.DeleteListing))
	mux.Post("/listings/image", ownerAuthMiddleware.ThenFunc(app.listingHandler.UploadImage))
	mux.Post("/listings/seed", ownerAuthMiddleware.ThenFunc(app.listingHandler.SeedDemoListings))

	// Discovery
	mux.Get("/explore", standardMiddleware.ThenFunc(app.exploreHandler.Explore))
	mux.Get("/recommendations", authMiddleware.ThenFunc(app.recommendationHandler.GetRecommendations))

	// Reviews
	mux.Post("/review", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/review/:listing_id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewsByListingID))
	mux.Del("/review/:id", authMiddleware.ThenFunc(app.reviewHandler.DeleteReview))

	// Favorites
	mux.Post("/favorites", authMiddleware.ThenFunc(app.favoriteHandler.AddToFavorites))
	mux.Del("/favorites/:listing_id", authMiddleware.ThenFunc(app.favoriteHandler.RemoveFromFavorites))
	mux.Get("/favorites/check/:listing_id", authMiddleware.ThenFunc(app.favoriteHandler.IsFavorite))
	mux.Get("/favorites", authMiddleware.ThenFunc(app.favoriteHandler.GetFavorites))

	// Bookings
	mux.Post("/bookings", authMiddleware.ThenFunc(app.bookingHandler.CreateBooking))
	mux.Put("/bookings/:id/status", authMiddleware.ThenFunc(app.bookingHandler.SetStatus))
	mux.Get("/bookings/mine", authMiddleware.ThenFunc(app.bookingHandler.GetMyBookings))
	mux.Get("/bookings/incoming", ownerAuthMiddleware.ThenFunc(app.bookingHandler.GetIncomingBookings))

	// Owner notifications
	mux.Get("/ws", standardMiddleware.ThenFunc(app.WebSocketHandler))

	return mux
}
