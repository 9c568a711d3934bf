package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"jobtracker/internal/auth"
	"jobtracker/internal/config"
	"jobtracker/internal/db"
	"jobtracker/internal/model"
	"jobtracker/internal/repository"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
	Jobs     []model.Job
}

var seedUsers = []seedUser{
	{
		Name:     "Ana Lima",
		Email:    "ana@example.com",
		Password: "Abc12345!",
		Jobs: []model.Job{
			{Company: "Acme", Position: "Engineer", Status: model.StatusPending},
			{Company: "Globex", Position: "Backend Developer", Status: model.StatusInterview},
		},
	},
	{
		Name:     "Bruno Costa",
		Email:    "bruno@example.com",
		Password: "Xyz98765?",
		Jobs: []model.Job{
			{Company: "Initech", Position: "SRE", Status: model.StatusDeclined},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Job{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)

	created := 0
	for _, su := range seedUsers {
		// Idempotent: re-running the seeder skips existing users.
		if _, err := userRepo.FindByEmail(ctx, su.Email); err == nil {
			log.Printf("User %s already exists, skipping", su.Email)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to look up user %s: %v", su.Email, err)
		}

		hash, err := auth.HashPassword(su.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.Email, err)
		}

		user := &model.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.Email, err)
		}

		for _, job := range su.Jobs {
			job.CreatedBy = user.ID
			if err := jobRepo.Create(ctx, &job); err != nil {
				log.Fatalf("Failed to create job for %s: %v", su.Email, err)
			}
		}
		created++
		log.Printf("Seeded user %s with %d jobs", su.Email, len(su.Jobs))
	}

	log.Printf("Seed completed, %d users created", created)
}
