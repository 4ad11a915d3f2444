package config

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postssdk "github.com/wangdayong228/posts-client/pkg/posts-sdk"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	return cfgPath
}

func TestLoadFromFile(t *testing.T) {
	cfgPath := writeConfig(t, `
baseUrl: http://127.0.0.1:8080/posts
timeout: 5s
userId: 7
logLevel: debug
headers:
  X-Client: posts-client
`)

	got, err := LoadFromFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/posts", got.BaseURL)
	assert.Equal(t, 5*time.Second, got.Timeout)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "debug", got.LogLevel)
	require.Len(t, got.Headers, 1)
	require.NoError(t, got.Validate())
	assert.Equal(t, logrus.DebugLevel, got.Logger().GetLevel())
}

func TestLoadFromFile_PartialUsesDefaults(t *testing.T) {
	cfgPath := writeConfig(t, "baseUrl: http://localhost:8080/posts\n")

	got, err := LoadFromFile(cfgPath)
	require.NoError(t, err)
	d := Default()
	assert.Equal(t, "http://localhost:8080/posts", got.BaseURL)
	assert.Equal(t, d.Timeout, got.Timeout)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "info", got.LogLevel)
	assert.Empty(t, got.Headers)
	require.NoError(t, got.Validate())
}

func TestLoadFromFile_OnlyUserID(t *testing.T) {
	cfgPath := writeConfig(t, "userId: 3\n")

	got, err := LoadFromFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, postssdk.DefaultBaseURL, got.BaseURL)
	assert.Equal(t, int64(3), got.UserID)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "读取配置文件失败")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"relative url", func(c *Config) { c.BaseURL = "/posts" }, "baseUrl"},
		{"empty url", func(c *Config) { c.BaseURL = "" }, "baseUrl"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "logLevel"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	require.NoError(t, Default().Validate())
}

func TestClientOptions_HeadersReachRequest(t *testing.T) {
	cfgPath := writeConfig(t, `
headers:
  X-Client: posts-client
  X-Trace: abc
`)
	cfg, err := LoadFromFile(cfgPath)
	require.NoError(t, err)

	var got http.Header
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer s.Close()

	l := logrus.New()
	l.SetOutput(io.Discard)
	res := postssdk.New(s.URL+"/posts", cfg.ClientOptions(l)...).Posts.List(context.Background())
	require.True(t, res.IsOk(), "result: %+v", res)

	// header 名大小写不敏感，viper 会把 key 转成小写
	assert.Equal(t, "posts-client", got.Get("X-Client"))
	assert.Equal(t, "abc", got.Get("X-Trace"))
	assert.Equal(t, "application/json", got.Get("Accept"))
}
