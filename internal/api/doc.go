// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between the dashboard
// frontend and the internal application services, translating HTTP concerns
// to business operations.
package api
