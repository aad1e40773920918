package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"weekenddiaries/internal/api"
	"weekenddiaries/internal/config"
	"weekenddiaries/internal/container"
	"weekenddiaries/ui"
)

func main() {
	// Load environment variables from .env file
	config.LoadDotEnv(".env")

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create dependency injection container
	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Close()

	if err := appContainer.Init(ctx); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Warm the cache; a missing file is reported here and again per request
	if _, err := appContainer.PlaceService.Table(ctx); err != nil {
		log.Printf("⚠️  Places not loaded yet: %v", err)
	}

	uiApp, err := ui.NewApp(appContainer.PlaceService, ui.Config{
		SidebarImage: appConfig.UI.SidebarImage,
		WeekendPicks: appConfig.UI.WeekendPicks,
	})
	if err != nil {
		log.Fatalf("Failed to create UI app: %v", err)
	}
	apiServer := api.NewServer(appContainer.PlaceService, appConfig.UI.WeekendPicks)

	servers := []*http.Server{
		{Addr: ":" + appConfig.Server.Port, Handler: uiApp.Handler()},
		{Addr: ":" + appConfig.Server.APIPort, Handler: apiServer.PublicHandler(api.EdgeConfig{
			AllowedOrigins: appConfig.Server.AllowedOrigins,
			RateLimit:      appConfig.Server.RateLimit,
		})},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			log.Printf("🚀 Listening on http://localhost%s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down servers...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		var firstErr error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("✅ Servers stopped")
}
