// Package store defines the persistence interfaces for the admin API and the
// sentinel errors their implementations return. Concrete implementations live
// in internal/platform/postgres; services depend only on these interfaces so
// tests can substitute recording doubles.
package store
