package utils

import "cruise-booking-api/internal/constant"

// Response is the uniform JSON envelope for error and status bodies.
type Response struct {
	Code    int         `json:"code"`
	Msg     string      `json:"msg"`
	Data    interface{} `json:"data,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func Success(data interface{}) Response {
	return Response{
		Code: constant.CodeSuccess,
		Msg:  "success",
		Data: data,
	}
}

func Error(code int) Response {
	if info, exists := constant.GetErrorInfo(code); exists {
		return Response{Code: code, Msg: info.Msg}
	}
	return Response{Code: code, Msg: "unknown error"}
}

func ErrorWithData(code int, data interface{}) Response {
	r := Error(code)
	r.Data = data
	return r
}

func ErrorWithTrace(code int, traceID string) Response {
	r := Error(code)
	r.TraceID = traceID
	return r
}

func CustomError(code int, message string) Response {
	return Response{Code: code, Msg: message}
}

func CustomErrorWithTrace(code int, message, traceID string) Response {
	return Response{Code: code, Msg: message, TraceID: traceID}
}
