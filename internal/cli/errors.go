package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Run-level errors
	ErrDirNotFound    = "DIR_NOT_FOUND"
	ErrNotADirectory  = "NOT_A_DIRECTORY"
	ErrConfigInvalid  = "CONFIG_INVALID"
	ErrGeneratorError = "GENERATOR_INVALID"

	// Per-file errors
	ErrFileNotFound     = "FILE_NOT_FOUND"
	ErrGenerationFailed = "GENERATION_FAILED"
	ErrFileWriteError   = "FILE_WRITE_ERROR"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
