package utils

// LoggerInitializationFailedMessageFormat formats the panic raised when the logger cannot be built.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// ApplicationExecutionFailedMessage prefixes the fatal log entry for a failed run.
const ApplicationExecutionFailedMessage = "guide generation failed"
