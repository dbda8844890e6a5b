package constants

const (
	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware.
	ContextKeyUsername = "username"
	ContextKeyIsAdmin  = "is_admin"
	ContextKeyUserRole = "user_role"

	// Database table names
	TableUsers          = "users"
	TableClients        = "clients"
	TableProjects       = "projects"
	TableProjectMembers = "project_members"
	TableTickets        = "tickets"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)
