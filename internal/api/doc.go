// Package api implements the HTTP handlers for the onboarding analysis
// service, along with request validation and error-to-status mapping.
package api
