package postgres

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/pkg/config"
)

// schemaDDL crea las tablas si no existen. El log genérico (movements) y las
// cinco tablas de detalle son append-only; stock es el saldo materializado con
// unicidad por producto+sector. user_id con ON DELETE SET NULL: borrar un
// usuario no borra su historial. national_id es único pero opcional: la capa
// de persistencia guarda NULL cuando viene vacío (dos '' colisionarían).
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	national_id   TEXT UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	active        BOOLEAN NOT NULL DEFAULT true,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	code        TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	size        TEXT NOT NULL DEFAULT '',
	unit_weight NUMERIC(14,3) NOT NULL DEFAULT 0,
	active      BOOLEAN NOT NULL DEFAULT true,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS stock (
	product_id BIGINT NOT NULL REFERENCES products(id),
	sector     TEXT NOT NULL,
	quantity   NUMERIC(14,3) NOT NULL DEFAULT 0,
	weight     NUMERIC(14,3) NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (product_id, sector)
);

CREATE TABLE IF NOT EXISTS movements (
	id          UUID PRIMARY KEY,
	type        TEXT NOT NULL,
	product_id  BIGINT NOT NULL REFERENCES products(id),
	from_sector TEXT,
	to_sector   TEXT,
	quantity    NUMERIC(14,3) NOT NULL,
	weight      NUMERIC(14,3) NOT NULL,
	user_id     BIGINT REFERENCES users(id) ON DELETE SET NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_movements_product ON movements(product_id);
CREATE INDEX IF NOT EXISTS idx_movements_created ON movements(created_at);

CREATE TABLE IF NOT EXISTS incoming_logs (
	id         UUID PRIMARY KEY,
	product_id BIGINT NOT NULL REFERENCES products(id),
	sector     TEXT NOT NULL,
	quantity   NUMERIC(14,3) NOT NULL,
	weight     NUMERIC(14,3) NOT NULL,
	user_id    BIGINT REFERENCES users(id) ON DELETE SET NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS outgoing_logs (
	id         UUID PRIMARY KEY,
	product_id BIGINT NOT NULL REFERENCES products(id),
	sector     TEXT NOT NULL,
	quantity   NUMERIC(14,3) NOT NULL,
	weight     NUMERIC(14,3) NOT NULL,
	user_id    BIGINT REFERENCES users(id) ON DELETE SET NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS transfer_logs (
	id          UUID PRIMARY KEY,
	product_id  BIGINT NOT NULL REFERENCES products(id),
	from_sector TEXT NOT NULL,
	to_sector   TEXT NOT NULL,
	quantity    NUMERIC(14,3) NOT NULL,
	weight      NUMERIC(14,3) NOT NULL,
	user_id     BIGINT REFERENCES users(id) ON DELETE SET NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS adjustment_logs (
	id         UUID PRIMARY KEY,
	product_id BIGINT NOT NULL REFERENCES products(id),
	sector     TEXT NOT NULL,
	quantity   NUMERIC(14,3) NOT NULL,
	weight     NUMERIC(14,3) NOT NULL,
	user_id    BIGINT REFERENCES users(id) ON DELETE SET NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS new_product_logs (
	id         UUID PRIMARY KEY,
	product_id BIGINT NOT NULL REFERENCES products(id),
	sector     TEXT NOT NULL,
	quantity   NUMERIC(14,3) NOT NULL,
	weight     NUMERIC(14,3) NOT NULL,
	user_id    BIGINT REFERENCES users(id) ON DELETE SET NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// CreateSchema ejecuta el DDL idempotente al arrancar.
func CreateSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SeedAdmin crea el usuario ADMIN inicial si la tabla de usuarios está vacía.
// Idempotente: con usuarios existentes no hace nada.
func SeedAdmin(ctx context.Context, q Querier, seed config.SeedConfig) error {
	repo := NewUserRepository(q)
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	return repo.Create(ctx, &entity.User{
		Name:         "Administrador",
		Email:        seed.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    time.Now(),
	})
}
