package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	BadRequestErrorCode     = 400
	NotFoundErrorCode       = 404
	TooManyRequestsCode     = 429
)
