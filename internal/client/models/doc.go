// Package models defines the client-side copies of server resources. They
// are transient and non-authoritative: the server is the source of truth.
package models
