// Package domain contains the core business entities of the task manager:
// users, todo lists, tasks and categories, together with the pure logic that
// operates on them (validation, partial updates, pagination arithmetic and
// analytics aggregation). It is independent of storage and transport.
package domain
