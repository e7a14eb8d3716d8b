// Package service contains the application use cases: registration and
// login, list, task and category management, search and analytics.
//
// Services receive their stores and a store.Transactor through constructors
// and never see a concrete database. Every mutation runs inside one
// transaction obtained from the Transactor; stores are rebound to it with
// WithTx. Failures are wrapped in *ServiceError, which unwraps to the store or
// domain error so the API layer can map it with errors.Is.
package service
