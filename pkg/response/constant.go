package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	// Error codes sent in Resp.ErrorCode.
	ValidationErrorCode     = 1
	InternalServerErrorCode = 500

	DateTimeFormat = "2006-01-02 15:04:05"
)
