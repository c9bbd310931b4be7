// Package expo is a minimal client for an Expo-compatible push-notification
// endpoint. The admin API only forwards dashboard-composed messages; receipt
// polling and retry belong to the provider, not to this service.
package expo
