// Package testdb provides utilities for database integration tests: a shared
// connection to DATABASE_URL with the embedded migrations applied, a
// rolled-back transaction per test, and insert helpers for fixtures.
//
// Tests that use it are tagged with the integration build tag and are
// skipped when DATABASE_URL is not set.
package testdb
