package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// CurrentUserKey holds the authenticated *models.User in the gin context.
const CurrentUserKey = "current_user"

// RequestIDKey holds the per-request correlation ID.
const RequestIDKey = contextKey("request_id")
