// Command seed recreates the users table and inserts a fixed set of example
// accounts. Intended for development databases only: it drops existing data.
package main

import (
	"context"
	"log"
	"time"

	"github.com/urbanfood/usersvc/pkg/config"
	pgrepo "github.com/urbanfood/usersvc/pkg/repository/postgres"
	"github.com/urbanfood/usersvc/pkg/storage/postgres"
	"github.com/urbanfood/usersvc/pkg/users"
)

var seedUsers = []users.RegisterInput{
	{FirstName: "João", LastName: "Silva", Email: "joao.silva@exemplo.com", Password: "senha123", IsAdmin: true},
	{FirstName: "Maria", LastName: "Santos", Email: "maria.santos@exemplo.com", Password: "senha456"},
	{FirstName: "Pedro", LastName: "Oliveira", Email: "pedro.oliveira@exemplo.com", Password: "senha789"},
}

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `DROP TABLE IF EXISTS users`); err != nil {
		log.Fatalf("drop users table: %v", err)
	}

	repo, err := pgrepo.NewUserRepository(pool)
	if err != nil {
		log.Fatalf("init user repo: %v", err)
	}

	hasher := users.NewBcryptHasher()
	for _, input := range seedUsers {
		hash, err := hasher.Hash(input.Password)
		if err != nil {
			log.Fatalf("hash password for %s: %v", input.Email, err)
		}
		user := users.User{
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Email:        input.Email,
			PasswordHash: hash,
			IsAdmin:      input.IsAdmin,
			CreatedAt:    time.Now().UTC(),
		}
		if err := repo.Create(ctx, &user); err != nil {
			log.Fatalf("insert %s: %v", input.Email, err)
		}
		log.Printf("seeded user %d <%s>", user.ID, user.Email)
	}
}
