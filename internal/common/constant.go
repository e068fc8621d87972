package common

// AuthorizationHeader carries the bearer credential on protected requests.
const AuthorizationHeader = "Authorization"

// BearerScheme is the only scheme accepted in AuthorizationHeader.
const BearerScheme = "Bearer"

// TokenStorageKey is the fixed key under which clients persist the token.
const TokenStorageKey = "jwtToken"

// RequestIDHeader echoes the per-request id assigned by the server.
const RequestIDHeader = "X-Request-ID"
