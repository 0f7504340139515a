package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// uniqueConstraint devuelve el nombre del constraint violado en un 23505,
// o "" si el error no trae esa información.
func uniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// nullIfEmpty convierte "" en NULL para columnas opcionales con UNIQUE.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// isLockTimeout verifica si un error es un timeout de bloqueo de fila (55P03,
// lock_not_available). Ocurre cuando otra transacción retiene el FOR UPDATE
// más que el lock_timeout de la sesión.
func isLockTimeout(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "55P03"
	}
	return false
}
