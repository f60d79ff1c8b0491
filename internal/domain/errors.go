package domain

// 业务错误码（直接进 GraphQL extensions.code）
const (
	CodeNotFound   = "NOT_FOUND"
	CodeAuthFailed = "AUTHENTICATION_ERROR"
	CodeUnauthed   = "UNAUTHENTICATED"
	CodeForbidden  = "FORBIDDEN"
	CodeConflict   = "CONFLICT"
	CodeValidation = "VALIDATION_ERROR"
	CodeInvalidOp  = "INVALID_OPERATION"
	CodeInternal   = "INTERNAL_ERROR"
)

// Error 统一业务错误对象。实现 gqlerrors.ExtendedError，
// 所以 code/field 会原样出现在响应的 extensions 里。
type Error struct {
	Code    string
	Message string
	Field   string // 校验错误时指向出错字段，可空
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if e.Field != "" {
		ext["field"] = e.Field
	}
	return ext
}

func NotFound(msg string) error        { return &Error{Code: CodeNotFound, Message: msg} }
func AuthFailed(msg string) error      { return &Error{Code: CodeAuthFailed, Message: msg} }
func Unauthenticated(msg string) error { return &Error{Code: CodeUnauthed, Message: msg} }
func Forbidden(msg string) error       { return &Error{Code: CodeForbidden, Message: msg} }
func Conflict(msg string) error        { return &Error{Code: CodeConflict, Message: msg} }
func InvalidOp(msg string) error       { return &Error{Code: CodeInvalidOp, Message: msg} }
func Internal(msg string) error        { return &Error{Code: CodeInternal, Message: msg} }

// Invalid 字段校验错误
func Invalid(field, msg string) error {
	return &Error{Code: CodeValidation, Message: msg, Field: field}
}

// CodeOf 取业务错误码；非业务错误按 INTERNAL_ERROR 处理
func CodeOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return CodeInternal
}
