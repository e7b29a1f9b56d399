package common

// TokenHeaderName is the HTTP header carrying the session token.
const TokenHeaderName = "X-Token"

// SessionKeyPrefix is prepended to the token when building the KV store key
// holding the session, e.g. "auth_b80b4567-...".
const SessionKeyPrefix = "auth_"
