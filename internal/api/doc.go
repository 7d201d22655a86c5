// Package api contains the HTTP delivery layer: request/response models,
// handlers for the auth, user, project, and task endpoints, and the mapping
// from internal errors to sanitized HTTP responses.
//
// Handlers stay thin. They decode and validate the payload, pull the
// authenticated user ID from the context (placed there by the auth
// middleware), delegate to the service layer, and serialize the result.
// All authorization decisions live in the services; the handlers only
// translate their sentinel errors into status codes via HandleAPIError.
package api
