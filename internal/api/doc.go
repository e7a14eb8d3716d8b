// Package api exposes the todo list service over HTTP. Each handler decodes
// and validates one request, calls a service with the authenticated user id
// and renders the result or a mapped error as JSON.
package api
