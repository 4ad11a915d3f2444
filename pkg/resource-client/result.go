package resourceclient

// Result 是 ResourceClient 所有操作的返回值：要么 Ok 带 Value，要么 Error 带 Message。
type Result[T any] struct {
	Kind  Kind `json:"kind"`
	Value T    `json:"value,omitempty"`

	Message string `json:"message,omitempty"`
	// StatusCode 仅在 Failure 为 FailureHTTPStatus 时非 0
	StatusCode int         `json:"statusCode,omitempty"`
	Failure    FailureKind `json:"failure,omitempty"`
	// Detail 为服务端错误响应体中的 message，仅供排查，不参与分支判断
	Detail string `json:"detail,omitempty"`
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Kind: KindOk, Value: v}
}

func (r Result[T]) IsOk() bool {
	return r.Kind == KindOk
}

func (r Result[T]) IsError() bool {
	return r.Kind == KindError
}

// HasStatusCode 表示失败时是否收到过 HTTP 响应。
func (r Result[T]) HasStatusCode() bool {
	return r.StatusCode != 0
}
