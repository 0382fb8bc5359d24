package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ml-pipeline-service/internal/adapters/primary/http/handlers"
	"ml-pipeline-service/internal/adapters/primary/http/middleware"
	"ml-pipeline-service/internal/adapters/secondary/fsstore"
	"ml-pipeline-service/internal/config"
	"ml-pipeline-service/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	store, err := fsstore.New(cfg.Store.ArtifactDir)
	if err != nil {
		log.Fatalf("open artifact store: %v", err)
	}

	// Model selection and load happen once; the loaded model is immutable
	// shared state for the lifetime of the process.
	loader := services.NewLoader(store)
	model, err := loader.LoadForServing(context.Background())
	if err != nil {
		log.Fatalf("load model for serving: %v", err)
	}

	inferenceSvc := services.NewInferenceService(model)
	h := handlers.New(inferenceSvc, nil)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	h.RegisterInferenceRoutes(router.Group("/"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting inference server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
