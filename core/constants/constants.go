package constants

// Context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

// Database defaults
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Scheduling defaults
const (
	// DefaultSlotUnitMinutes is the length of one availability timeslot unit.
	// Every published availability window is quantized into units of this size.
	DefaultSlotUnitMinutes = 30

	// DefaultHostLockTTLSeconds bounds how long a per-host reservation lock
	// may be held before it expires on its own.
	DefaultHostLockTTLSeconds = 10
)

// Queue task types
const (
	TaskTypeRepairWeek = "container:repair_week"
)
