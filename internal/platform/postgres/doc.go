// Package postgres contains the PostgreSQL implementations of the store
// interfaces. Every store takes a store.DBTX so the same code runs against a
// connection pool or an open transaction.
package postgres
