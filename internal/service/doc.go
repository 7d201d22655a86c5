// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// (defined in internal/store) to fulfill application features.
//
// The services enforce the ownership model: every read or mutation of a
// project or task scoped to a user passes through the authorization gate in
// ownership.go, which makes resources owned by other users indistinguishable
// from absent ones.
//
// Services receive dependencies through constructor injection and translate
// store-level errors into the sentinel errors the API layer maps to HTTP
// status codes.
package service
