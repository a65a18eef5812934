package main

import (
	"context"
	"log"
	"os"
	"time"

	"notes-be/internal/entity"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"
	"notes-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "demo-password"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: demoEmail})
	if err != nil {
		log.Fatal("Error: Failed to check demo account:", err)
	}
	if existing != nil {
		color.Yellow("Demo account %s already exists, nothing to do", demoEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash demo password:", err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        demoEmail,
		FullName:     "Demo User",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		log.Fatal("Error: Failed to create demo account:", err)
	}
	color.Green("Created demo account %s (password: %s)", demoEmail, demoPassword)

	notes := []*entity.Note{
		{
			Id:        uuid.New(),
			Title:     "Welcome",
			Content:   "This is your first note. Pin the important ones to keep them on top.",
			Tags:      []string{"getting-started"},
			IsPinned:  true,
			UserId:    user.Id,
			CreatedAt: time.Now(),
		},
		{
			Id:        uuid.New(),
			Title:     "Groceries",
			Content:   "Milk, eggs, coffee beans.",
			Tags:      []string{"shopping"},
			UserId:    user.Id,
			CreatedAt: time.Now(),
		},
		{
			Id:        uuid.New(),
			Title:     "Reading list",
			Content:   "The Go Programming Language, Designing Data-Intensive Applications.",
			Tags:      []string{},
			UserId:    user.Id,
			CreatedAt: time.Now(),
		},
	}

	for _, note := range notes {
		if err := uow.NoteRepository().Create(ctx, note); err != nil {
			log.Fatal("Error: Failed to seed note:", err)
		}
		color.Cyan("Seeded note %q", note.Title)
	}

	color.Green("Seeding complete: 1 account, %d notes", len(notes))
}
