package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jortega-dev/correo/internal/api"
	"github.com/jortega-dev/correo/internal/config"
	"github.com/jortega-dev/correo/internal/db"
	"github.com/jortega-dev/correo/internal/middleware"
	"github.com/jortega-dev/correo/internal/observ"
	"github.com/jortega-dev/correo/internal/repository/postgres"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	// Startup has no parent request, so the root context is fine here; once
	// serving, every query runs under its request's context.
	database, err := db.New(context.Background(), cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(context.Background()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool := database.Pool()
	userStore := postgres.NewUserStore(pool)
	contactStore := postgres.NewContactStore(pool)
	messageStore := postgres.NewMessageStore(pool)
	attachmentStore := postgres.NewAttachmentStore(pool)
	copyTypeStore := postgres.NewCopyTypeStore(pool)

	authHandler := api.NewAuthHandler(userStore, logger)
	userHandler := api.NewUserHandler(userStore, logger)
	contactHandler := api.NewContactHandler(contactStore, logger)
	messageHandler := api.NewMessageHandler(messageStore, logger)
	attachmentHandler := api.NewAttachmentHandler(attachmentStore, cfg.AttachTxBatch, logger)
	copyTypeHandler := api.NewCopyTypeHandler(copyTypeStore, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := gin.New()
	srv.Use(gin.Recovery())
	srv.Use(middleware.RequestLogger(logger))
	// The frontend is served from a different origin.
	srv.Use(cors.Default())

	root := srv.Group("/api")
	root.GET("/health", func(c *gin.Context) {
		if err := database.Health(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	root.POST("/login", authHandler.Login)
	root.GET("/getUser", userHandler.GetUser)
	root.GET("/getContacts", contactHandler.GetContacts)
	root.GET("/getContact", contactHandler.GetContact)
	root.POST("/createContact", contactHandler.CreateContact)
	root.POST("/sendMessage", messageHandler.SendMessage)
	root.POST("/destinatario", messageHandler.Destinatario)
	root.GET("/recibidos", messageHandler.Recibidos)
	root.GET("/enviados", messageHandler.Enviados)
	root.POST("/adjuntos", attachmentHandler.Adjuntos)
	root.GET("/tiposCopia", copyTypeHandler.List)

	logger.Info("starting correo backend",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
	)

	return srv.Run(":" + cfg.Port)
}
