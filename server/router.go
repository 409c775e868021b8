package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"holidaze/server/handlers"
	"holidaze/util"
)

type Router struct {
	venueHandler   *handlers.VenueHandler
	authHandler    *handlers.AuthHandler
	profileHandler *handlers.ProfileHandler
	managerHandler *handlers.ManagerHandler
	healthHandler  *handlers.HealthHandler
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler *handlers.VenueHandler,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	managerHandler *handlers.ManagerHandler,
	healthHandler *handlers.HealthHandler,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:   venueHandler,
		authHandler:    authHandler,
		profileHandler: profileHandler,
		managerHandler: managerHandler,
		healthHandler:  healthHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(requestLogger)

	r.router.HandleFunc("/ping", r.healthHandler.Ping).Methods("GET")

	v1 := r.router.PathPrefix("/v1").Subrouter()

	// expects ?q=&location=&rating=&guests=&price=, all optional
	v1.HandleFunc("/venues", r.venueHandler.Browse).Methods("GET")
	v1.HandleFunc("/venues", r.managerHandler.CreateVenue).Methods("POST")
	v1.HandleFunc("/venues/{id}", r.venueHandler.GetVenue).Methods("GET")
	v1.HandleFunc("/venues/{id}", r.managerHandler.UpdateVenue).Methods("PUT")
	v1.HandleFunc("/venues/{id}", r.managerHandler.DeleteVenue).Methods("DELETE")
	// expects ?year={int}&month={1-12}, defaults to the current month
	v1.HandleFunc("/venues/{id}/calendar", r.venueHandler.Calendar).Methods("GET")
	v1.HandleFunc("/venues/{id}/quote", r.venueHandler.Quote).Methods("POST")
	v1.HandleFunc("/venues/{id}/bookings", r.venueHandler.Book).Methods("POST")

	v1.HandleFunc("/auth/register", r.authHandler.Register).Methods("POST")
	v1.HandleFunc("/auth/login", r.authHandler.Login).Methods("POST")
	v1.HandleFunc("/auth/logout", r.authHandler.Logout).Methods("POST")

	v1.HandleFunc("/profiles/{name}", r.profileHandler.GetProfile).Methods("GET")
	v1.HandleFunc("/profiles/{name}", r.profileHandler.UpdateProfile).Methods("PUT")
	v1.HandleFunc("/profiles/{name}/venue-manager", r.profileHandler.SetVenueManager).Methods("PUT")
	v1.HandleFunc("/profiles/{name}/bookings-chart", r.profileHandler.BookingsChart).Methods("GET")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		util.GetLogger().Debugw("[Router] request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
