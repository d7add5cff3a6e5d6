package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalogapi/internal/auth"
	"catalogapi/internal/book"
	"catalogapi/internal/config"
	"catalogapi/internal/httpx"
	"catalogapi/internal/jobs"
	"catalogapi/internal/listing"
	"catalogapi/internal/platform/mysql"
	"catalogapi/internal/report"
	"catalogapi/internal/user"

	_ "catalogapi/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Catalog API
// @version 1.0
// @description REST CRUD API for books and marketplace listings with async market reports.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	db, err := mysql.Open(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("cannot connect to database (%s): %v", mysql.RedactDSN(cfg.DBDSN), err)
	}
	defer db.Close()
	log.Println("database connection OK")

	runner := jobs.NewRunner(cfg.JobWorkers, cfg.JobQueueSize)
	runner.Start()

	bookRepo := book.NewMySQLRepo(db, cfg.QueryTimeout)
	listingRepo := listing.NewMySQLRepo(db, cfg.QueryTimeout)
	userRepo := user.NewMySQLRepo(db, cfg.QueryTimeout)
	reportRepo := report.NewMySQLRepo(db, cfg.QueryTimeout)

	bookHandler := book.NewHTTPHandler(book.NewService(bookRepo))
	listingHandler := listing.NewHTTPHandler(listing.NewService(listingRepo))
	userHandler := user.NewHTTPHandler(userRepo, cfg.JWTSecret)
	reportHandler := report.NewHTTPHandler(report.NewService(reportRepo, listingRepo, runner))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	router.Use(
		httpx.RequestIDMiddleware(),
		httpx.RecoveryMiddleware(),
		httpx.AccessLogMiddleware(),
		httpx.SecurityHeadersMiddleware(),
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		rateLimit.Middleware(),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/readyz", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			c.String(http.StatusServiceUnavailable, "db not ready")
			return
		}
		c.String(http.StatusOK, "ready")
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := auth.Middleware(cfg.JWTSecret)
	api := router.Group("/api/v1")
	bookHandler.RegisterRoutes(api, authRequired)
	listingHandler.RegisterRoutes(api, authRequired)
	userHandler.RegisterRoutes(api, authRequired)
	reportHandler.RegisterRoutes(api, authRequired)

	httpServer := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", cfg.AppAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := runner.Shutdown(shutdownCtx); err != nil {
		log.Printf("job runner shutdown: %v", err)
	}
}
