package errors

// ErrorCode identifies an error family for logging and API responses.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1002

	ErrorCode_AUTH_MISSING_SIGNATURE ErrorCode = 2000
	ErrorCode_AUTH_INVALID_SIGNATURE ErrorCode = 2001

	ErrorCode_FETCH_FAILED ErrorCode = 3000

	ErrorCode_SUMMARIZATION_FAILED   ErrorCode = 4000
	ErrorCode_MODEL_RESPONSE_INVALID ErrorCode = 4001
	ErrorCode_TOKEN_EXCHANGE_FAILED  ErrorCode = 4002

	ErrorCode_DESTINATION_WRITE_FAILED ErrorCode = 5000
	ErrorCode_DESTINATION_CHECK_FAILED ErrorCode = 5001

	ErrorCode_PROCESSING_FAILED ErrorCode = 6000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_AUTH_MISSING_SIGNATURE:   "AUTH_MISSING_SIGNATURE",
	ErrorCode_AUTH_INVALID_SIGNATURE:   "AUTH_INVALID_SIGNATURE",
	ErrorCode_FETCH_FAILED:             "FETCH_FAILED",
	ErrorCode_SUMMARIZATION_FAILED:     "SUMMARIZATION_FAILED",
	ErrorCode_MODEL_RESPONSE_INVALID:   "MODEL_RESPONSE_INVALID",
	ErrorCode_TOKEN_EXCHANGE_FAILED:    "TOKEN_EXCHANGE_FAILED",
	ErrorCode_DESTINATION_WRITE_FAILED: "DESTINATION_WRITE_FAILED",
	ErrorCode_DESTINATION_CHECK_FAILED: "DESTINATION_CHECK_FAILED",
	ErrorCode_PROCESSING_FAILED:        "PROCESSING_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
