package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proteseflow/cmd"
	apihttp "proteseflow/internal/adapters/in/http"
	"proteseflow/internal/adapters/out/objectstore"
	"proteseflow/internal/adapters/out/postgres"
	"proteseflow/internal/adapters/out/sessionstore"
	"proteseflow/internal/core/application/usecases/commands"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/pkg/logger"
	"proteseflow/internal/pkg/password"
	"proteseflow/internal/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(logger.Config{Env: configs.Env, Level: configs.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, zl); err != nil {
		zl.Fatal().Err(err).Msg("proteseflow stopped")
	}
}

func run(ctx context.Context, configs cmd.Config, zl zerolog.Logger) error {
	gormDB, err := gorm.Open(gormpg.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		return err
	}

	storage, err := objectstore.NewFileStorage(objectstore.Config{
		Endpoint:  configs.MinioEndpoint,
		AccessKey: configs.MinioAccessKey,
		SecretKey: configs.MinioSecretKey,
		Bucket:    configs.MinioBucket,
		UseSSL:    configs.MinioUseSSL,
	})
	if err != nil {
		return err
	}
	if err = storage.EnsureBucket(ctx); err != nil {
		return err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	defer func() {
		_ = redisClient.Close()
	}()
	sessions := sessionstore.NewStore(redisClient)
	if err = sessions.Ping(ctx); err != nil {
		return err
	}

	tokens, err := token.NewManager(configs.JWTSecret, configs.JWTIssuer, configs.JWTTTL)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, gormDB, storage, password.NewHasher(configs.BcryptCost), zl)

	if err = bootstrapSuperuser(ctx, app, configs, zl); err != nil {
		return err
	}

	e := newEcho(app, tokens, sessions, zl)
	return serve(ctx, e, configs.HTTPAddr(), zl)
}

func bootstrapSuperuser(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, zl zerolog.Logger) error {
	if configs.SuperuserUsername == "" || configs.SuperuserPassword == "" {
		return nil
	}

	command, err := commands.NewBootstrapSuperuserCommand(
		user.Profile{Username: configs.SuperuserUsername, Email: configs.SuperuserEmail},
		configs.SuperuserPassword,
	)
	if err != nil {
		return err
	}

	handler := app.CreateBootstrapSuperuserCommandHandler()
	u, created, err := handler.Handle(ctx, command)
	if err != nil {
		return err
	}
	if created {
		zl.Info().Int64("user_id", u.ID().Int64()).Str("username", u.Username()).Msg("superuser created")
	}
	return nil
}

func newEcho(app cmd.CompositionRoot, tokens *token.Manager, sessions *sessionstore.Store, zl zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = apihttp.NewErrorHandler(zl)

	doc, err := apihttp.LoadOpenAPI(context.Background())
	if err != nil {
		zl.Fatal().Err(err).Msg("openapi")
	}
	validator, err := apihttp.NewRequestValidator(doc)
	if err != nil {
		zl.Fatal().Err(err).Msg("openapi router")
	}

	e.Use(middleware.RequestID())
	e.Use(apihttp.RequestLogger(zl))
	e.Use(middleware.Recover())
	e.Use(validator)

	handlers := apihttp.Handlers{
		RegisterDentist:    app.CreateRegisterDentistCommandHandler(),
		Authenticate:       app.CreateAuthenticateCommandHandler(),
		UpdateProfile:      app.CreateUpdateProfileCommandHandler(),
		ChangePassword:     app.CreateChangePasswordCommandHandler(),
		CreateUser:         app.CreateCreateUserCommandHandler(),
		EditUser:           app.CreateEditUserCommandHandler(),
		ChangeAccountState: app.CreateChangeAccountStateCommandHandler(),
		PurgeUser:          app.CreatePurgeUserCommandHandler(),
		CreateOrder:        app.CreateCreateOrderCommandHandler(),
		EditOrder:          app.CreateEditOrderCommandHandler(),
		ChangeOrderStatus:  app.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:        app.CreateDeleteOrderCommandHandler(),

		ListOrders:       app.CreateListOrdersQueryHandler(),
		GetOrder:         app.CreateGetOrderQueryHandler(),
		GetDashboard:     app.CreateGetDashboardQueryHandler(),
		ListUsers:        app.CreateListUsersQueryHandler(),
		GetUser:          app.CreateGetUserQueryHandler(),
		GetAttachmentURL: app.CreateGetAttachmentURLQueryHandler(),
	}

	auth := apihttp.NewAuthenticator(tokens, sessions, app.Users(), zl)
	apihttp.NewServer(handlers, auth, tokens, sessions, zl).RegisterRoutes(e)
	return e
}

func serve(ctx context.Context, e *echo.Echo, addr string, zl zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		zl.Info().Str("addr", addr).Msg("http server started")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
