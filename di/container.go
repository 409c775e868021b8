package di

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"holidaze/api"
	"holidaze/api/holidaze"
	"holidaze/config"
	"holidaze/dao/redis"
	"holidaze/db"
	"holidaze/server"
	"holidaze/server/handlers"
	services "holidaze/service"
	"holidaze/util"
)

// Container holds all application dependencies.
type Container struct {
	Config                 *config.Config
	RedisClient            db.RedisClient
	RedisVenueDao          *redis.RedisVenueDAO
	RedisSessionDao        *redis.RedisSessionDAO
	HolidazeAPI            holidaze.HolidazeAPI
	VenueService           *services.VenueService
	VenuePageService       *services.VenuePageService
	AuthService            *services.AuthService
	ProfileService         *services.ProfileService
	ManagerService         *services.ManagerService
	VenuesRefresherService *services.VenuesRefresherService
	MuxRouter              *mux.Router
	Router                 *server.Router
	HolidazeHttpServer     *server.HolidazeHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := util.GetLogger()
	logger.Infof("initializing container - env: %s", cfg.Env)

	redisClient, err := newRedisClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient)
	redisSessionDao := redis.NewRedisSessionDAO(redisClient)

	var holidazeApi holidaze.HolidazeAPI
	if cfg.IsProduction() {
		logger.Info("Using prod holidaze api")
		httpClient := api.NewThrottledHTTPClient(
			cfg.APIBaseURL,
			cfg.APIKey,
			cfg.HTTPTimeout,
			cfg.APIRequestsPerSecond,
			cfg.APIBurst,
		)
		holidazeApi = holidaze.NewHolidazeApiClient(httpClient)
	} else {
		logger.Infof("Using mock holidaze api with fixtures in %s", cfg.ResourcesPath)
		holidazeApi = holidaze.NewHolidazeApiClientMock(cfg.ResourcesPath)
	}

	venueService := services.NewVenueService(redisVenueDao, holidazeApi, cfg.VenueCacheTTL, cfg.CatalogMaxPages)
	venuePageService := services.NewVenuePageService(holidazeApi)
	authService := services.NewAuthService(redisSessionDao, holidazeApi, cfg.SessionTTL)
	profileService := services.NewProfileService(holidazeApi, authService)
	managerService := services.NewManagerService(holidazeApi, venueService)
	venuesRefresherService := services.NewVenuesRefresherService(venueService)

	sessions := handlers.NewSessions(authService)
	venueHandler := handlers.NewVenueHandler(venueService, venuePageService, sessions)
	authHandler := handlers.NewAuthHandler(authService, cfg.IsProduction())
	profileHandler := handlers.NewProfileHandler(profileService, sessions)
	managerHandler := handlers.NewManagerHandler(managerService, sessions)
	healthHandler := handlers.NewHealthHandler(authService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, authHandler, profileHandler, managerHandler, healthHandler, muxRouter)
	httpServer := server.NewHolidazeHttpServer(router, muxRouter, cfg.AppPort)

	return &Container{
		Config:                 cfg,
		RedisClient:            redisClient,
		RedisVenueDao:          redisVenueDao,
		RedisSessionDao:        redisSessionDao,
		HolidazeAPI:            holidazeApi,
		VenueService:           venueService,
		VenuePageService:       venuePageService,
		AuthService:            authService,
		ProfileService:         profileService,
		ManagerService:         managerService,
		VenuesRefresherService: venuesRefresherService,
		MuxRouter:              muxRouter,
		Router:                 router,
		HolidazeHttpServer:     httpServer,
	}, nil
}

// Close releases the redis connection when one is held.
func (c *Container) Close() error {
	if closer, ok := c.RedisClient.(*db.GoRedisClient); ok {
		return closer.Close()
	}
	return nil
}

func newRedisClient(ctx context.Context, cfg *config.Config) (db.RedisClient, error) {
	if !cfg.IsProduction() {
		util.GetLogger().Info("Using in-memory redis client")
		return db.NewMockRedisClient(), nil
	}

	internal := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	client, err := db.NewGoRedisClient(ctx, internal)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}
