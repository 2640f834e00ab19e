package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Path parameter error messages
	ErrMsgInvalidDay   = "Invalid day parameter"
	ErrMsgInvalidLevel = "Invalid level parameter"
)

// Success messages for API responses
const (
	MsgSessionStartedSuccess = "Cultivation session started"
	MsgLoginRecordedSuccess  = "Login recorded"
	MsgTargetRegistered      = "Equipment registered"
)
