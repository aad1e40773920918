package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"weekenddiaries/internal/config"
	"weekenddiaries/internal/container"
	"weekenddiaries/ui"
)

func main() {
	config.LoadDotEnv(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer c.Close()

	if err := c.Init(ctx); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	app, err := ui.NewApp(c.PlaceService, ui.Config{
		SidebarImage: cfg.UI.SidebarImage,
		WeekendPicks: cfg.UI.WeekendPicks,
	})
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	server := &http.Server{Addr: ":" + cfg.Server.Port, Handler: app.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("Starting Weekend Diaries UI on http://localhost:%s", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
