// Package mocks provides in-memory implementations of the store and
// service interfaces for testing. Every mock follows the same pattern:
// function fields override individual methods, and a map-backed default
// implementation covers the common cases.
package mocks
