// Package store provides abstractions for data persistence: the interfaces
// the service layer depends on and the sentinel errors implementations
// translate storage failures into.
package store
