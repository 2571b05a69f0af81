package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/faraaz0786/pglife/internal/config"
	"github.com/faraaz0786/pglife/internal/handlers"
	"github.com/faraaz0786/pglife/internal/repositories"
	"github.com/faraaz0786/pglife/internal/services"
	"github.com/faraaz0786/pglife/utils"
	"github.com/redis/go-redis/v9"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	db       *sql.DB

	userRepo *repositories.UserRepository

	userHandler           *handlers.UserHandler
	listingHandler        *handlers.ListingHandler
	reviewHandler         *handlers.ReviewHandler
	favoriteHandler       *handlers.FavoriteHandler
	bookingHandler        *handlers.BookingHandler
	recommendationHandler *handlers.RecommendationHandler
	exploreHandler        *handlers.ExploreHandler

	wsManager *WebSocketManager
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	listingRepo := repositories.ListingRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	statsCache := &repositories.RatingStatsCache{RDB: rdb}

	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}
	handlers.SetSigningKey(cfg.JWT.SigningKey)

	wsManager := NewWebSocketManager()

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager, SigningKey: cfg.JWT.SigningKey}
	listingService := &services.ListingService{ListingRepo: &listingRepo, ReviewRepo: &reviewRepo}
	reviewService := &services.ReviewService{ReviewRepo: &reviewRepo, StatsCache: statsCache}
	favoriteService := &services.FavoriteService{FavoriteRepo: &favoriteRepo}
	bookingService := &services.BookingService{BookingRepo: &bookingRepo, ListingRepo: &listingRepo, Notifier: wsManager}
	searchService := &services.SearchService{Catalog: &listingRepo}
	recommendationService := &services.RecommendationService{
		Listings:   &listingRepo,
		Reviews:    &reviewRepo,
		Users:      &userRepo,
		StatsCache: statsCache,
	}
	explorationService := &services.ExplorationService{
		Searcher:   searchService,
		Reviews:    &reviewRepo,
		Users:      &userRepo,
		StatsCache: statsCache,
	}

	storage := utils.NewStorage(cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint)

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	listingHandler := &handlers.ListingHandler{Service: listingService, SearchService: searchService, Storage: storage}
	reviewHandler := &handlers.ReviewHandler{Service: reviewService}
	favoriteHandler := &handlers.FavoriteHandler{Service: favoriteService}
	bookingHandler := &handlers.BookingHandler{Service: bookingService}
	recommendationHandler := &handlers.RecommendationHandler{Service: recommendationService}
	exploreHandler := &handlers.ExploreHandler{Service: explorationService}

	return &application{
		errorLog:              errorLog,
		infoLog:               infoLog,
		cfg:                   cfg,
		db:                    db,
		userRepo:              &userRepo,
		userHandler:           userHandler,
		listingHandler:        listingHandler,
		reviewHandler:         reviewHandler,
		favoriteHandler:       favoriteHandler,
		bookingHandler:        bookingHandler,
		recommendationHandler: recommendationHandler,
		exploreHandler:        exploreHandler,
		wsManager:             wsManager,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
