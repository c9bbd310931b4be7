// Package service contains the application flows behind the dashboard
// endpoints: the compensating delete sequencers for restaurants and riders,
// the paired identity+profile provisioning flow, and push-notification
// forwarding.
//
// Flows are strictly sequential chains of remote calls with no retries.
// Steps are either fatal (abort the sequence, surface the error) or
// best-effort (failure is logged, collected as a warning, and the sequence
// continues). See the step runner in steps.go.
package service
