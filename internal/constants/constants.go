package constants

const (
	// ContextKeyUserID is the session and gin context key holding the authenticated user id.
	ContextKeyUserID = "user_id"
	// ContextKeyRole holds the authenticated user's role.
	ContextKeyRole = "role"
	// ContextKeyRequestID holds the per-request correlation id.
	ContextKeyRequestID = "request_id"

	SessionCookieName = "taskmaster_session"
	HeaderRequestID   = "X-Request-ID"
)

// Signup and profile defaults.
const (
	DefaultUsernameSuffix = ".zehrs"
	DefaultEmailDomain    = "store.com"
	AvatarURLTemplate     = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s"
	MinPasswordLength     = 1
	InitialLevel          = 1
)

// Task defaults.
const (
	DefaultXPReward      = 50
	DefaultInstructions  = "Standard operating procedure applies."
	DefaultImageURL      = "https://picsum.photos/600/400?random=%d"
	PlaceholderFileURL   = "#"
	DateLayout           = "2006-01-02"
	MaxDailyAssignTitles = 50
)

// Gamification.
const (
	XPPerLevel = 1000
)

// Insight generator.
const (
	SuggestionFallbackSize = 3
	DefaultGeminiModel     = "gemini-2.5-flash"
)

// Pagination.
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
