// Package postgres contains PostgreSQL implementations of the store
// interfaces, built on database/sql over the pgx stdlib driver.
package postgres
