package constant

// Business error codes. The HTTP status a handler pairs with a code is the
// handler's decision; codes are stable across transports.
const (
	CodeSuccess = 0

	CodeInvalidParams   = 40001
	CodeMissingParams   = 40002
	CodeParamsTypeError = 40003
	CodeInvalidAmount   = 40004

	CodeUnauthorized     = 40101
	CodeSignatureError   = 40102
	CodeIPNotAllowed     = 40103
	CodeTimestampExpired = 40104

	CodeNotFound = 40401

	CodeInternalError     = 50001
	CodeConfigError       = 50002
	CodeGatewayError      = 50003
	CodeTransactionFailed = 50004
)

type ErrorInfo struct {
	Msg string
}

var errorTable = map[int]ErrorInfo{
	CodeSuccess:           {"success"},
	CodeInvalidParams:     {"invalid parameters"},
	CodeMissingParams:     {"missing required parameters"},
	CodeParamsTypeError:   {"parameter type error"},
	CodeInvalidAmount:     {"amount must be a positive number"},
	CodeUnauthorized:      {"unauthorized"},
	CodeSignatureError:    {"signature verification failed"},
	CodeIPNotAllowed:      {"source IP not allowed"},
	CodeTimestampExpired:  {"request timestamp expired"},
	CodeNotFound:          {"record not found"},
	CodeInternalError:     {"internal error"},
	CodeConfigError:       {"service misconfigured"},
	CodeGatewayError:      {"payment gateway error"},
	CodeTransactionFailed: {"transaction failed"},
}

func GetErrorInfo(code int) (ErrorInfo, bool) {
	info, ok := errorTable[code]
	return info, ok
}
