package common

// AuthorizationHeader is the HTTP header carrying the bearer credential
// on authenticated requests.
const AuthorizationHeader = "Authorization"

// RequestIDHeader carries a per-request correlation id so that client and
// backend logs can be matched up.
const RequestIDHeader = "X-Request-Id"
