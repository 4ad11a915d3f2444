package resourceclient

import (
	"context"
	"errors"
	"fmt"
)

// 以下三种错误只在包内流转，最终都会被 toResult 折叠为 Result，不会返回给调用方。

// transportError 表示还没收到任何响应就失败了（DNS、连接、超时、取消）。
type transportError struct {
	cause error
}

func (e *transportError) Error() string { return e.cause.Error() }
func (e *transportError) Unwrap() error { return e.cause }

// statusError 表示收到了非 2xx 响应。
type statusError struct {
	statusCode int
	// detail 为错误响应体中的 message（如果能解析出来）
	detail string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.statusCode)
}

// decodeError 表示响应体无法解析为期望的 JSON 结构。
type decodeError struct {
	cause error
}

func (e *decodeError) Error() string { return e.cause.Error() }
func (e *decodeError) Unwrap() error { return e.cause }

// newTransportError 在 ctx 已被取消或超时时，优先使用 ctx 的原因，避免暴露底层包装后的 url.Error。
func newTransportError(ctx context.Context, err error) *transportError {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(err, ctxErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return &transportError{cause: ctxErr}
		}
	}
	return &transportError{cause: err}
}

// toResult 把包内错误折叠为 Result。action 形如 "load posts"、"create post"。
func toResult[T any](action string, err error) Result[T] {
	var se *statusError
	if errors.As(err, &se) {
		return Result[T]{
			Kind:       KindError,
			Failure:    FailureHTTPStatus,
			Message:    se.Error(),
			StatusCode: se.statusCode,
			Detail:     se.detail,
		}
	}

	failure := FailureTransport
	var de *decodeError
	if errors.As(err, &de) {
		failure = FailureDecode
	}
	return Result[T]{
		Kind:    KindError,
		Failure: failure,
		Message: fmt.Sprintf("Failed to %s: %s", action, err.Error()),
	}
}
