package response

// Response messages and codes.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Xin lỗi, đã có lỗi xảy ra. Vui lòng thử lại sau."
	InternalServerErrorCode = 500
	BadRequestErrorCode     = 1
)
