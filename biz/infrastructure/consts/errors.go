package consts

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Errno 是业务错误, 携带调用方可见信息与服务端日志信息
type Errno struct {
	err   error
	code  codes.Code
	cause error
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	if en.cause != nil {
		return en.err.Error() + ": " + en.cause.Error()
	}
	return en.err.Error()
}

// Public 返回可以展示给调用方的信息, 不包含内部细节
func (en *Errno) Public() string { return en.err.Error() }

// Code 返回错误码
func (en *Errno) Code() int { return int(en.code) }

// HTTPStatus 业务错误对应的HTTP状态码
func (en *Errno) HTTPStatus() int {
	switch en.code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Wrap 附加底层原因, 只进入日志, 不返回给调用方
func (en *Errno) Wrap(cause error) *Errno {
	return &Errno{err: en.err, code: en.code, cause: cause}
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// InvalidRequest 创建一个校验错误, 错误信息会原样返回给调用方
func InvalidRequest(format string, args ...any) *Errno {
	return NewErrno(codes.InvalidArgument, fmt.Errorf(format, args...))
}

// 定义常量错误
var (
	// ErrMissingCredential 大模型凭证缺失, 对外只暴露通用信息
	ErrMissingCredential = NewErrno(codes.Internal, errors.New("completion service unavailable"))

	// ErrUpstream 大模型调用失败(非2xx)
	ErrUpstream = NewErrno(codes.Unavailable, errors.New("upstream completion failed"))

	// ErrEmptyCompletion 大模型响应成功但没有可用文本
	ErrEmptyCompletion = NewErrno(codes.Unavailable, errors.New("upstream completion empty"))

	// ErrBadCompletion 大模型响应无法解析为结构化数据
	ErrBadCompletion = NewErrno(codes.Unavailable, errors.New("upstream completion unparseable"))

	// ErrInternal 流水线中未预期的异常
	ErrInternal = NewErrno(codes.Internal, errors.New("internal error"))
)
