// Package gotrue implements identity.Provider against the admin REST surface
// of a GoTrue-compatible authentication server.
package gotrue
