// Package identity defines the interface to the external authentication
// provider's admin API. The provider is an external collaborator: this
// service never reads its tables directly, only calls its REST surface.
// The production implementation lives in internal/platform/gotrue.
package identity
