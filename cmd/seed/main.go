// seed aplica el esquema inicial y crea el primer usuario admin.
//
// Uso: go run ./cmd/seed [email] [password]
// Por defecto usa admin@tiendas.local y la contraseña de SEED_ADMIN_PASSWORD.
// El esquema se lee de internal/infrastructure/postgres/migrations/001_init.sql.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tiendas-api/internal/domain/account"
	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
	"github.com/jhoicas/Tiendas-api/pkg/config"
)

const migrationPath = "internal/infrastructure/postgres/migrations/001_init.sql"

func main() {
	email := "admin@tiendas.local"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if len(os.Args) > 2 {
		password = os.Args[2]
	}
	if err := account.ValidatePassword(password); err != nil {
		fmt.Fprintf(os.Stderr, "Password del admin: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	schema, err := os.ReadFile(migrationPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer esquema: %v\n", err)
		os.Exit(1)
	}
	if _, err := conn.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}

	// ON CONFLICT DO NOTHING: re-ejecutar el seed no duplica ni pisa al admin.
	tag, err := conn.Exec(ctx, `
		INSERT INTO users (id, name, email, address, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "Administrador General del Sistema", email, "N/A", string(hash), entity.RoleAdmin,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}
	if tag.RowsAffected() == 0 {
		fmt.Printf("Admin %s ya existía; esquema verificado.\n", email)
		return
	}
	fmt.Printf("Esquema aplicado y admin %s creado.\n", email)
}
