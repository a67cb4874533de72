package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/db"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

const (
	demoUsername = "LocalUser"
	demoEmail    = "localuser@example.com"
	demoPassword = "password"

	welcomeTitle   = "Welcome"
	welcomeContent = "This post was created by the seed script.\n\n**Markdown** is rendered into `content_html`."
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, db.Options{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	// Refresh tokens are never issued here, so no token store is needed.
	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL), nil)
	postService := service.NewPostService(postRepo, nil)

	ctx := context.Background()
	user, created, err := seedUser(ctx, authService, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	if created {
		log.Printf("Created user %s (id=%d)", user.Username, user.ID)
	} else {
		log.Printf("User %s already exists (id=%d)", user.Username, user.ID)
	}

	post, created, err := seedWelcomePost(ctx, postService, user.ID)
	if err != nil {
		log.Fatalf("Failed to seed post: %v", err)
	}
	if created {
		log.Printf("Created post %q (id=%d)", post.Title, post.ID)
	} else {
		log.Printf("Post %q already exists (id=%d)", post.Title, post.ID)
	}

	log.Println("Seed completed successfully!")
}

// seedUser registers the demo user unless it already exists.
func seedUser(ctx context.Context, authService service.AuthService, users repository.UserRepository) (*model.User, bool, error) {
	user, err := authService.Register(ctx, demoUsername, demoEmail, demoPassword)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, apperrors.ErrUserAlreadyExists) {
		return nil, false, err
	}

	existing, err := users.FindByUsernameOrEmail(ctx, demoUsername, demoEmail)
	if err != nil {
		return nil, false, fmt.Errorf("load existing user: %w", err)
	}
	return existing, false, nil
}

// seedWelcomePost creates the welcome post unless the author already has one with the same title.
func seedWelcomePost(ctx context.Context, posts service.PostService, authorID uint) (*model.Post, bool, error) {
	existing, err := posts.ListPosts(ctx, repository.PostFilter{
		AuthorID:    authorID,
		ListOptions: repository.ListOptions{Limit: repository.MaxPageLimit},
	})
	if err != nil {
		return nil, false, err
	}
	for i := range existing {
		if existing[i].Title == welcomeTitle {
			return &existing[i], false, nil
		}
	}

	post, err := posts.CreatePost(ctx, authorID, welcomeTitle, welcomeContent)
	if err != nil {
		return nil, false, err
	}
	return post, true, nil
}
