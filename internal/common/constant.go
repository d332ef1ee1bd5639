package common

// SessionTokenHeaderName is the gRPC metadata key used to carry the session
// token on authenticated unary requests.
const SessionTokenHeaderName = "session_token"
