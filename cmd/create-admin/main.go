// Command create-admin seeds the initial administrator account. Safe to run
// repeatedly: an existing account with the same username is left untouched.
//
// Usage:
//
//	create-admin [-usuario admin] [-password admin123]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	usuario := flag.String("usuario", "admin", "admin username")
	password := flag.String("password", "admin123", "admin password")
	cost := flag.Int("bcrypt-cost", 12, "bcrypt cost")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), *cost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	tag, err := pool.Exec(ctx, `
		INSERT INTO usuarios (usuario, password_hash, nombre, apellido, rol, activo, token_version)
		VALUES ($1, $2, 'Administrador', 'Sistema', 'admin', true, 0)
		ON CONFLICT (usuario) DO NOTHING`,
		*usuario, string(hash),
	)
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("Admin %q already exists, nothing to do.\n", *usuario)
		return
	}
	fmt.Printf("Created admin %q.\n", *usuario)
}
