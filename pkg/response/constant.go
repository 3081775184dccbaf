package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong, please try again"
	InternalServerErrorCode = 500

	DateTimeFormat = time.RFC3339
)
