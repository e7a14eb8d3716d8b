// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx driver. Every query is scoped by the requesting
// user, and driver errors are translated into store errors by MapError.
package postgres
