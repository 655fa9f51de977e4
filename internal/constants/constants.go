package constants

// Centralized constants for env keys, routes, JSON keys and log fields.
const (
	// Environment variable keys
	EnvAddr         = "ARENA_ADDR"
	EnvDB           = "ARENA_DB"
	EnvCatalog      = "ARENA_CATALOG"
	EnvLogLevel     = "ARENA_LOG_LEVEL"
	EnvMaxRetries   = "ARENA_MAX_RETRIES"
	EnvTieBreak     = "ARENA_TIE_BREAK"
	EnvSleepPolicy  = "ARENA_SLEEP_POLICY"
	EnvMaxAutoTurns = "ARENA_MAX_AUTO_TURNS"
	EnvFile         = ".env"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
)

// Routes used by the backend router
const (
	RouteAPIPrefix         = "/api"
	RouteHealth            = "/health"
	RouteVersion           = "/version"
	RouteTeams             = "/teams"
	RouteOpponents         = "/opponents"
	RouteLeaderboard       = "/leaderboard"
	RouteTrainerStats      = "/trainers/:playerID/stats"
	RouteTrainerBattles    = "/trainers/:playerID/battles"
	RouteBattles           = "/battles"
	RouteBattleByID        = "/battles/:battleID"
	RouteBattleAction      = "/battles/:battleID/action"
	RouteBattleValidAction = "/battles/:battleID/valid-actions"
	RouteBattleTeam        = "/battles/:battleID/team"
	RouteBattleEvents      = "/battles/:battleID/events"
)

// Path and query parameters
const (
	ParamBattleID  = "battleID"
	ParamPlayerID  = "playerID"
	QueryPlayerID  = "player_id"
	QueryLastTurns = "last_turns"
	QueryLimit     = "limit"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidBattleID        = "Invalid battle ID"
	ErrPlayerIDRequired       = "player_id is required"
	ErrInvalidLastTurns       = "last_turns must be a non-negative integer"
	ErrInvalidLimit           = "limit must be a positive integer"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchStats       = "Failed to fetch stats"
	ErrInternal               = "Internal error"
)

// Logging field names
const (
	LogFieldBattleID = "battle_id"
	LogFieldPlayerID = "player_id"
	LogFieldProfile  = "npc_profile"
	LogFieldTurn     = "turn"
	LogFieldVersion  = "version"
	LogFieldAttempt  = "attempt"
	LogFieldAction   = "action"
	LogFieldEvents   = "events"
	LogFieldOutcome  = "outcome"
	LogFieldKind     = "kind"
	LogFieldSource   = "source"
	LogFieldAddr     = "addr"
	LogFieldPath     = "path"
)
