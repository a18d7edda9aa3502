package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/media"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/services"

	"github.com/rs/zerolog"
)

const cliVersion = "1.0.0"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = strings.ToLower(os.Args[1])
	}

	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog API server (default).
`
	fmt.Println(helpText)
}

func serve() {
	cfg := config.Load()

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()

	store, uploadsDir, err := buildMediaStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up media store")
	}

	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	contactRepo := repositories.NewBadgerContactMessageRepository(db)
	settingsRepo := repositories.NewBadgerSettingsRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	postService := services.NewPostService(postRepo, store, log)
	commentService := services.NewCommentService(commentRepo, postRepo)
	contactService := services.NewContactService(contactRepo)
	settingsService := services.NewSettingsService(settingsRepo, store, log)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo)

	if err := userService.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	router := routes.Setup(routes.Deps{
		Posts:    controllers.NewPostController(postService),
		Comments: controllers.NewCommentController(commentService),
		Auth:     controllers.NewAuthController(authService),
		Settings: controllers.NewSettingsController(settingsService),
		Profile:  controllers.NewProfileController(userService),
		Contact:  controllers.NewContactController(contactService),

		AuthService: authService,
		Log:         log,
		UploadsDir:  uploadsDir,
	})

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Info().Str("addr", addr).Str("media", cfg.MediaBackend).Msg("starting server")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// buildMediaStore picks the configured media backend. The returned directory
// is empty unless files live on local disk and can be served statically.
func buildMediaStore(cfg *config.Config) (media.Store, string, error) {
	switch cfg.MediaBackend {
	case config.MediaBackendMinio:
		store, err := media.NewMinioStore(context.Background(), media.MinioOptions{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		})
		return store, "", err
	default:
		store, err := media.NewDiskStore(cfg.UploadsDir)
		if err != nil {
			return nil, "", err
		}
		return store, store.Dir(), nil
	}
}
