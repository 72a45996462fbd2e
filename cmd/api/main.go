package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-map-api/docs"
	"campus-map-api/internal/animator"
	"campus-map-api/internal/camera"
	"campus-map-api/internal/config"
	"campus-map-api/internal/geoapi"
	"campus-map-api/internal/handler"
	"campus-map-api/internal/models"
	"campus-map-api/internal/repository"
	"campus-map-api/internal/service"
	"campus-map-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

//	@title			Campus Map API
//	@version		1.0
//	@description	Destination search, routing and camera playback for the campus map client.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	buildingService := service.NewBuildingService(repo, log.Logger)
	if config.SeedOnStart {
		if _, err := buildingService.Seed(ctx, models.DefaultBuildings); err != nil {
			log.Fatal().Err(err).Msg("cannot seed buildings")
		}
	}

	// Initialize layers
	routeStore := store.NewRouteStore()
	geoClient := geoapi.NewClient(geoapi.Config{
		PlacesBaseURL:     config.PlacesBaseURL,
		DirectionsBaseURL: config.DirectionsBaseURL,
		GoogleAPIKey:      config.GoogleAPIKey,
		MapboxToken:       config.MapboxToken,
		Profile:           config.RouteProfile,
		Timeout:           config.HTTPTimeout,
	}, nil, log.Logger)

	broker := camera.NewBroker(log.Logger)
	anim := animator.New(broker,
		animator.WithInterval(config.PlaybackInterval),
		animator.WithLogger(log.Logger),
	)

	searchPipeline := service.NewSearchPipeline(geoClient, routeStore, log.Logger)
	navigationService := service.NewNavigationService(routeStore, anim, geoClient.Profile(), log.Logger)
	locationService := service.NewLocationService(repo, routeStore, log.Logger)

	r := newRouter(
		handler.NewSearchHandler(searchPipeline),
		handler.NewRouteHandler(routeStore, navigationService),
		handler.NewNavigationHandler(navigationService, broker),
		handler.NewBuildingHandler(buildingService),
		handler.NewLocationHandler(locationService),
	)

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("address", config.ServerAddress).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("shutting down")

		// End playback and camera streams first so Shutdown is not held open by SSE clients.
		anim.Cancel()
		broker.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func setupLogger(config config.Config) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
}

func newRouter(
	search *handler.SearchHandler,
	route *handler.RouteHandler,
	navigation *handler.NavigationHandler,
	buildings *handler.BuildingHandler,
	locations *handler.LocationHandler,
) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/search", search.State)
	r.GET("/search/autocomplete", search.Autocomplete)
	r.POST("/search/select", search.Select)

	r.GET("/route", route.GetRoute)
	r.DELETE("/route", route.ClearRoute)

	r.POST("/locations", locations.Record)

	r.GET("/buildings", buildings.List)
	r.GET("/buildings/nearest", buildings.Nearest)
	r.GET("/buildings/:name", buildings.Get)

	nav := r.Group("/navigation")
	nav.POST("/playback", navigation.StartPlayback)
	nav.DELETE("/playback", navigation.CancelPlayback)
	nav.GET("/playback", navigation.PlaybackStatus)
	nav.GET("/camera", navigation.CameraEvents)
	nav.GET("/external", navigation.ExternalNavigation)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
