package resourceclient

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Names 用于拼接失败信息，例如 "Failed to load posts: ..."。
type Names struct {
	Singular string
	Plural   string
}

// Client 封装单个 REST 集合的 list / create / delete。
// T 为服务端返回的记录类型，N 为创建时提交的类型（不含 id）。
// 每个操作只发一次请求，不缓存任何结果，可以被多个 goroutine 并发调用。
type Client[T any, N any] struct {
	http  *HTTPClient
	names Names
}

func New[T any, N any](hc *HTTPClient, names Names) *Client[T, N] {
	if names.Singular == "" {
		names.Singular = "resource"
	}
	if names.Plural == "" {
		names.Plural = names.Singular + "s"
	}
	return &Client[T, N]{http: hc, names: names}
}

// List GET <base>，返回集合中的全部记录。
func (c *Client[T, N]) List(ctx context.Context) Result[[]T] {
	action := "load " + c.names.Plural

	raw, err := c.http.do(ctx, resty.MethodGet, c.http.baseURL, nil)
	if err != nil {
		return toResult[[]T](action, err)
	}

	var out []T
	if err := decode(raw, &out); err != nil {
		return toResult[[]T](action, err)
	}
	if out == nil {
		out = []T{}
	}
	return Ok(out)
}

// Create POST <base>，返回服务端创建后的记录（通常带有分配的 id）。
// 没有幂等键，调用方不要盲目重试。
func (c *Client[T, N]) Create(ctx context.Context, in N) Result[T] {
	action := "create " + c.names.Singular

	raw, err := c.http.do(ctx, resty.MethodPost, c.http.baseURL, in)
	if err != nil {
		return toResult[T](action, err)
	}

	var out T
	if err := decode(raw, &out); err != nil {
		return toResult[T](action, err)
	}
	return Ok(out)
}

// Delete DELETE <base>/<id>，忽略响应体，成功时回显 id。
// 已经删除与从未存在无法区分，都会得到非 2xx 的结果。
func (c *Client[T, N]) Delete(ctx context.Context, id int64) Result[int64] {
	action := "delete " + c.names.Singular

	if _, err := c.http.do(ctx, resty.MethodDelete, c.itemURL(id), nil); err != nil {
		return toResult[int64](action, err)
	}
	return Ok(id)
}

func (c *Client[T, N]) itemURL(id int64) string {
	return c.http.baseURL + "/" + strconv.FormatInt(id, 10)
}

func decode(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &decodeError{cause: err}
	}
	return nil
}
