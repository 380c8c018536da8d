package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/expensex/expensex-api/config"
	"github.com/expensex/expensex-api/handlers"
	"github.com/expensex/expensex-api/middleware"
	"github.com/expensex/expensex-api/routes"
	"github.com/expensex/expensex-api/services"
	"github.com/expensex/expensex-api/store"
	"github.com/expensex/expensex-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.Flags().String("port", "8080", "port to listen on (overrides PORT)")
	_ = viper.BindPFlag("PORT", cmd.Flags().Lookup("port"))

	return cmd
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	utils.LogLevel = utils.ParseLogLevel(cfg.LogLevel)
	switch cfg.GinMode {
	case gin.ReleaseMode:
		utils.IsProduction = true
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	if err := config.RunMigrations(cfg); err != nil {
		return err
	}
	log.Println("✅ Migrations completed")

	db, err := config.InitDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Printf("✅ Database connected (%s)", cfg.DatabaseDriver)

	ws := handlers.NewWSHandler()

	var codec store.IdentityCodec = store.JSONCodec{}
	if cfg.SessionSigningKey != "" {
		codec = store.NewJWTCodec(cfg.SessionSigningKey)
	}

	var slots store.Slots = store.NewSQLSlots(db)
	if cfg.SlotEncryptionKey != "" {
		sealed, err := store.NewSealedSlots(slots, cfg.SlotEncryptionKey)
		if err != nil {
			return err
		}
		slots = sealed
	}

	st := store.New(store.Options{
		Slots:    slots,
		Codec:    codec,
		Notifier: ws,
		Delay:    cfg.LoginDelay,
	})
	if err := st.Init(ctx); err != nil {
		utils.SafeWarn("⚠️ Session restore failed: %v", err)
	}

	directory := services.NewDirectoryService(services.NewUserStore(db), cfg.Roles())
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	router := routes.NewRouter(routes.Dependencies{
		Config:      cfg,
		Directory:   directory,
		Store:       st,
		WS:          ws,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		limiter.Run(gctx, time.Minute)
		return nil
	})

	g.Go(func() error {
		utils.LogStartup("ExpenseX API", handlers.Version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("🛑 Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if cerr := ws.Close(); cerr != nil {
			utils.SafeWarn("⚠️ Closing websockets: %v", cerr)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Println("👋 Server stopped")
	return nil
}
