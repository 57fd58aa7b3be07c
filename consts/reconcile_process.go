package consts

const (
	// Step statuses
	StepStatusSuccess = "success"
	StepStatusWarning = "warning"
	StepStatusError   = "error"

	// Step priorities
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	// Title of the synthetic step recorded when the request fails validation
	InputValidationStepTitle = "Input Validation"

	// Default config
	DefaultPort          = "8080"
	DefaultDriver        = "mssql"
	DefaultBatchWorkers  = 4
	DefaultAPIKey        = "default-insecure-api-key-change-me"
	DefaultReadTimeoutS  = 15
	DefaultWriteTimeoutS = 60

	// Request headers
	HeaderAPIKey    = "X-API-Key"
	HeaderDatabase  = "X-Database"
	HeaderRequestID = "X-Request-ID"

	// DateLayout is the calendar-date layout accepted at the API boundary.
	DateLayout = "2006-01-02"

	// OfficePrefixLength is the number of leading loan-number characters that identify an office.
	OfficePrefixLength = 4
)
