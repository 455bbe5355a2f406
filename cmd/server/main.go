package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/aruiz-dev/tasklist/internal/config"
	"github.com/aruiz-dev/tasklist/internal/httpserver"
	"github.com/aruiz-dev/tasklist/internal/logging"
	"github.com/aruiz-dev/tasklist/internal/middleware"
	"github.com/aruiz-dev/tasklist/internal/repo"
	"github.com/aruiz-dev/tasklist/internal/service"
	"github.com/aruiz-dev/tasklist/internal/tokens"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}
	tokenSvc := &tokens.Service{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL}

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, Tokens: tokenSvc}},
		TaskHandler: &httpserver.TaskHTTP{Svc: &service.TaskService{Repo: gormRepo}},
		Auth:        middleware.NewBearerAuth(tokenSvc, gormRepo),
	})

	go func() {
		if err := e.Start(fmt.Sprintf(":%d", cfg.ServerPort)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
