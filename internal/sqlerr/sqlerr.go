// Package sqlerr handles database driver errors.
//
// It classifies PostgreSQL SQLSTATE codes from pgx and converts them into
// application errors (e.g. a unique violation on accounts.email becomes
// "ACCOUNT_ALREADY_EXISTS").
package sqlerr
