package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	_ "su_herramienta/docs" // generated by swag init
	"su_herramienta/internal/adapter/http/handlers"
	"su_herramienta/internal/adapter/jobs"
	"su_herramienta/internal/adapter/messaging"
	"su_herramienta/internal/adapter/persistence/repository"
	"su_herramienta/internal/config"
	"su_herramienta/internal/domain/phone"
	"su_herramienta/internal/infrastructure/database"
	"su_herramienta/internal/infrastructure/whatsapp"
	"su_herramienta/internal/usecase"
	"su_herramienta/internal/usecase/interfaces"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server and the WhatsApp session, and block until SIGINT/SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app, err := buildApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer app.close()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWhatsAppRoutes(v1, app.whatsappHandler)
	addOrderRoutes(v1, app.noticeHandler, app.equipmentHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("[http] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown failed err=%v", err)
	}
}

type app struct {
	whatsappHandler  *handlers.WhatsAppHandler
	noticeHandler    *handlers.OrderNotificationHandler
	equipmentHandler *handlers.EquipmentHandler
	close            func()
}

func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	schema, err := repository.SchemaFromEnv()
	if err != nil {
		return nil, err
	}
	db, err := database.ConnectMySQL(ctx, cfg.MySQLDSN, database.DefaultMySQLOptions())
	if err != nil {
		return nil, err
	}
	if cfg.EnsureSchema {
		if err := repository.EnsureSchema(ctx, db, schema); err != nil {
			db.Close()
			return nil, err
		}
	}

	orderRepo := repository.NewOrderMySQLRepository(db, schema)
	pendingRepo := repository.NewPendingAuthorizationMySQLRepository(db, schema)

	// A nil interface (not a typed nil pointer) disables auditing.
	var messageLog interfaces.IMessageLogRepository
	if cfg.MessageLogEnabled {
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			db.Close()
			return nil, err
		}
		messageLog = repository.NewMessageLogDynamoRepository(ddb)
	}

	waCfg := whatsapp.DefaultConfig()
	waCfg.SessionDBPath = cfg.SessionDBPath
	waCfg.LogLevel = cfg.WALogLevel
	waCfg.SendRatePerSecond = cfg.SendRatePerSecond
	waCfg.SendAttempts = cfg.SendAttempts
	transport, err := whatsapp.NewClient(ctx, waCfg)
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := transport.Start(ctx); err != nil {
		// The API keeps serving; sends fail with WHATSAPP_NOT_READY until linked.
		log.Printf("[wa][startup] session not started err=%v", err)
	}

	partsNumber := phone.NormalizePartsNumber(cfg.PartsNumber)
	if partsNumber == "" {
		log.Printf("[notify][startup] PARTS_WHATSAPP_NUMBER not configured, parts notices disabled")
	}
	notificationUseCase := usecase.NewNotificationUseCase(orderRepo, transport, messageLog, usecase.NotificationConfig{
		PartsNumber: partsNumber,
		SendTimeout: cfg.SendTimeout,
	})
	authorizationUseCase := usecase.NewAuthorizationUseCase(orderRepo, pendingRepo, transport, messageLog, notificationUseCase, usecase.AuthorizationConfig{
		AdvisorNumber: cfg.AdvisorNumber,
		SendTimeout:   cfg.SendTimeout,
		PendingTTL:    cfg.PendingTTL,
	})
	equipmentUseCase := usecase.NewEquipmentUseCase(orderRepo)

	consumer := messaging.NewInboundConsumer(authorizationUseCase, cfg.InboundHandlerTimeout)
	go consumer.Run(ctx, transport.Messages())
	go jobs.StartPendingSweeper(ctx, cfg.SweepInterval, authorizationUseCase)

	return &app{
		whatsappHandler:  handlers.NewWhatsAppHandler(authorizationUseCase, notificationUseCase),
		noticeHandler:    handlers.NewOrderNotificationHandler(notificationUseCase),
		equipmentHandler: handlers.NewEquipmentHandler(equipmentUseCase),
		close: func() {
			if err := transport.Close(); err != nil {
				log.Printf("[wa][shutdown] close failed err=%v", err)
			}
			if err := db.Close(); err != nil {
				log.Printf("[db][mysql] close failed err=%v", err)
			}
		},
	}, nil
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
