// Package models defines the rows persisted by the server and returned by
// the REST API. Gorm maps them onto the users and friends tables created by
// the goose migrations.
package models
