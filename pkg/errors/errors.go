package errors

// Error message constants for the order-imports application
const (
	// File processing errors
	ErrMsgFailedToReadFile   = "failed to read file"
	ErrMsgFailedToWriteFile  = "failed to write file"
	ErrMsgFailedToFormatFile = "failed to format file"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindSourceFiles = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"
	ErrMsgFailedToWatchDirectory  = "failed to watch directory"
	ErrMsgFailedToCreateWatcher   = "failed to create watcher"

	// Configuration errors
	ErrMsgInvalidFormatStyle      = "invalid format style %q (want normal or aligned)"
	ErrMsgFailedToReadConfig      = "failed to read config"
	ErrMsgFailedToDecodeConfig    = "failed to decode config"
	ErrMsgFailedToReadLocalConfig = "failed to read local config"
	ErrMsgFailedToWriteConfig     = "failed to write config"
	ErrMsgFailedToGetHomeDir      = "failed to get home directory"
	ErrMsgUnknownToggle           = "unknown setting %q (want one of %s)"
	ErrMsgInvalidLogLevel         = "invalid log level: %s"
	ErrMsgInvalidLogFormat        = "invalid log format: %s"

	// Info/warning messages
	WarnMsgProcessingDirWithoutInPlace = "Warning: Processing directory without --in-place flag. No files will be modified."
	InfoMsgUseInPlaceFlag              = "Use --in-place, --list or --diff to work on a directory, or specify a single file for stdout output."
	InfoMsgNoSourceFilesFound          = "No source files found in directory: %s"
	InfoMsgFoundSourceFiles            = "Found %d source files in directory: %s"
	InfoMsgProcessedFiles              = "Processed: %s"
	InfoMsgErrorProcessing             = "Error processing %s: %v"
	InfoMsgProcessedCount              = "\nProcessed %d files successfully"
	InfoMsgChangedCount                = ", %d changed"
	InfoMsgErrorCount                  = ", %d files had errors"
	InfoMsgOrganizeOnSaveDisabled      = "organize on save is disabled; enable it with: order-imports config toggle organize-on-save"
	InfoMsgSettingSaved                = "%s = %v (saved to %s)"
)
