package event

const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message formats
const (
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
