package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/campwright/campwright/internal/auth"
	"github.com/campwright/campwright/internal/config"
	"github.com/campwright/campwright/internal/handlers"
	"github.com/campwright/campwright/internal/repository"
	"github.com/campwright/campwright/internal/service"
	"github.com/campwright/campwright/internal/storage"
	"github.com/campwright/campwright/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Chi
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(handlers.MethodOverride)

	// OAuth
	goth.UseProviders(google.New(cfg.OAuth.GoogleKey, cfg.OAuth.GoogleSecret, cfg.OAuth.CallbackURL))

	// Session store
	maxAge := 86400 * 7
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.MaxAge(maxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.Prod
	gothic.Store = store

	// Database connection
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(models.User{}, models.Campground{}, models.Image{}, models.Review{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Custom HTTP client with TLS config for the object store
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			MaxVersion: tls.VersionTLS13,
		},
	}
	httpClient := &http.Client{Transport: tr}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithHTTPClient(httpClient),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.Storage.AccessKeyID, cfg.Storage.AccessKeySecret, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("ERR CONFIG:", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.Storage.AccountID))
	})
	objects := storage.NewS3Store(client, cfg.Storage.Bucket, cfg.Storage.PublicURL)

	// Services
	campgroundRepo := repository.NewCampgroundRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	campgrounds := service.NewCampgroundService(campgroundRepo, reviewRepo, objects)
	reviews := service.NewReviewService(reviewRepo, campgroundRepo)

	campgroundHandler := handlers.NewCampgroundHandler(campgrounds, store)
	reviewHandler := handlers.NewReviewHandler(reviews, store)

	// User auth
	r.Get("/auth/{provider}/callback", func(w http.ResponseWriter, r *http.Request) {
		handlers.UserLoginHandler(w, r, db)
	})
	r.Post("/logout/{provider}", func(w http.ResponseWriter, r *http.Request) {
		gothic.Logout(w, r)
		http.Redirect(w, r, "/campgrounds", http.StatusFound)
	})
	r.Post("/auth/{provider}", func(w http.ResponseWriter, r *http.Request) {
		if gothUser, err := gothic.CompleteUserAuth(w, r); err == nil {
			fmt.Fprintf(w, "User already authenticated: %s\n", gothUser.Name)
		} else {
			gothic.BeginAuthHandler(w, r)
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.WithUser)

		// Public reads
		r.Get("/campgrounds", campgroundHandler.List)
		r.Get("/campgrounds/{id}", campgroundHandler.Get)

		// Mutations; the service layer enforces authentication and
		// ownership, so unauthenticated requests get a proper 401.
		r.Group(func(r chi.Router) {
			r.Use(httprate.Limit(
				20,
				1*time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
			))
			r.Post("/campgrounds", campgroundHandler.Create)
			r.Put("/campgrounds/{id}", campgroundHandler.Update)
			r.Delete("/campgrounds/{id}", campgroundHandler.Delete)
			r.Post("/campgrounds/{id}/reviews", reviewHandler.Create)
			r.Delete("/campgrounds/{id}/reviews/{reviewID}", reviewHandler.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser)
			r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
				handlers.GetUserHandler(w, r, db)
			})
		})
	})

	log.Println("Starting API server on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
