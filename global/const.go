package global

const (
	AppVersion = "1.0.0" //project version shown in logs or health endponit

	// Gin context keys. Using string constants reduces risk of typos and collisions.

	// CtxSessionKey holds the *models.Session built by the auth middleware.
	CtxSessionKey = "session"
	// CtxRequestIDKey holds the request id set by the RequestID middleware.
	CtxRequestIDKey = "request_id"

	// HeaderRequestID is echoed back on every response.
	HeaderRequestID = "X-Request-ID"
)
