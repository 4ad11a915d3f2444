package resourceclient

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/nft-rainbow/rainbow-goutils/utils/ginutils"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTimeout  = 30 * time.Second
	RequestIDHeader = "X-Request-Id"
)

// HTTPClient 是最原生的 HTTP 交互层：负责 resty client、单次请求、错误分类。
// 不持有任何资源状态，只记录集合的 URL。
type HTTPClient struct {
	http    *resty.Client
	log     logrus.FieldLogger
	baseURL string
}

// settings 收集 Option，全部应用完之后再构造 resty client，因此 Option 的顺序无关紧要。
type settings struct {
	rc      *resty.Client
	timeout time.Duration
	headers [][2]string
	log     logrus.FieldLogger
}

type Option func(*settings)

// NewHTTPClient 创建底层 HTTP 客户端，baseURL 为集合地址，例如 https://host/posts。
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	s := &settings{timeout: DefaultTimeout, log: logrus.StandardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	rc := newRestyClient(s.rc).
		SetHeader("Accept", "application/json").
		SetTimeout(s.timeout).
		// 每次调用只发一次请求，重试策略交给调用方
		SetRetryCount(0).
		SetLogger(s.log)
	for _, h := range s.headers {
		rc.SetHeader(h[0], h[1])
	}

	return &HTTPClient{
		http:    rc,
		log:     s.log,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// newRestyClient 基于 base 的 http.Client 与公共 header 新建一个 resty client，不修改 base 本身。
func newRestyClient(base *resty.Client) *resty.Client {
	if base == nil {
		return resty.New()
	}
	hc := *base.GetClient()
	rc := resty.NewWithClient(&hc)
	for k, vs := range base.Header {
		rc.Header[k] = append([]string(nil), vs...)
	}
	return rc
}

// WithRestyClient 复用 rc 的 transport 与公共 header；rc 自身不会被修改。
func WithRestyClient(rc *resty.Client) Option {
	return func(s *settings) {
		if rc != nil {
			s.rc = rc
		}
	}
}

func WithHeader(key, value string) Option {
	return func(s *settings) {
		if key != "" {
			s.headers = append(s.headers, [2]string{key, value})
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// do 发起一次请求，2xx 时返回原始响应体；其余情况返回 transportError 或 statusError。
// body 非 nil 时按 JSON 编码发送。
func (c *HTTPClient) do(ctx context.Context, method, url string, body any) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	requestID := uuid.NewString()
	req := c.http.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, url)
	entry := c.log.WithFields(logrus.Fields{
		"method":     method,
		"url":        url,
		"request_id": requestID,
		"elapsed":    time.Since(start),
	})
	if err != nil {
		te := newTransportError(ctx, err)
		entry.WithError(te).Warn("request failed before any response")
		return nil, te
	}

	entry = entry.WithField("status", resp.StatusCode())
	if !resp.IsSuccess() {
		entry.Warn("request returned non-2xx status")
		return nil, &statusError{statusCode: resp.StatusCode(), detail: errorDetail(resp.Body())}
	}

	entry.Debug("request done")
	return resp.Body(), nil
}

// errorDetail 尝试把错误响应体解析为 ginutils.GinErrorBody，解析失败时返回空字符串。
func errorDetail(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var ge ginutils.GinErrorBody
	if err := json.Unmarshal(raw, &ge); err != nil {
		return ""
	}
	return ge.Message
}
