// Package store defines the persistence interfaces, store errors and the
// transaction helper shared by every repository. Implementations live in
// internal/platform/postgres.
package store
