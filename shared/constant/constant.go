package constant

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySessionID contextKey = "session_id"
	ContextKeyPrincipal contextKey = "principal"
)

const (
	RoleAdministrator = "administrator"
	RoleManager       = "manager"
	RoleStaff         = "staff"
	RoleCustomer      = "customer"
)

// Rental status identifiers as agreed with the Rentello backend.
// TODO: fetch these from /reference/rental-statuses once the backend exposes it.
const (
	RentalStatusReserved  = 1
	RentalStatusActive    = 2
	RentalStatusOverdue   = 3
	RentalStatusCompleted = 4
	RentalStatusCancelled = 5
)

const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04"
	DateTimeFormat = "2006-01-02T15:04:05"
)

const (
	RequestParamID = "id"
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	RedirectLogin = "/login"
	RedirectHome  = "/"
)

const (
	Empty = ""
)
