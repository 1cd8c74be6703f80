package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderXRequestID  = "X-Request-ID"
	HeaderXCSRFToken  = "X-CSRF-Token"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html"

	// Context keys
	ContextKeyAuth      = "auth_context"
	ContextKeyRequestID = "request_id"
	ContextKeyCSRFToken = "csrf_token"
	ContextKeyFlash     = "flash"

	// Cookie names
	CookieSession = "litrevu_session"
	CookieCSRF    = "csrf_token"
	CookieFlash   = "litrevu_flash"

	// Form field carrying the CSRF token when no header is sent
	FormFieldCSRF = "csrf_token"

	// Database table names
	TableUsers       = "users"
	TableSessions    = "sessions"
	TableTickets     = "tickets"
	TableReviews     = "reviews"
	TableComments    = "comments"
	TableFollowEdges = "follow_edges"

	// Field limits
	MaxUsernameLength    = 150
	MaxTitleLength       = 128
	MaxDescriptionLength = 2048
	MaxReviewBodyLength  = 8192
	MaxCommentLength     = 2048
	MinRating            = 0
	MaxRating            = 5
)
