package globals

// JwtSecret signs and verifies access tokens. main replaces it from
// ACCESS_TOKEN once the environment is loaded.
var JwtSecret = []byte("your_secret_key")

// Context keys
type ContextKey string

const ClaimsKey ContextKey = "claims"
