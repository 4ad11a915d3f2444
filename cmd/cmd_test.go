package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wangdayong228/posts-client/internal/mockserver"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	return runRootContext(t, context.Background(), args...)
}

func runRootContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configPath, baseURLFlag, logLevelFlag = "", "", ""
		timeoutFlag = 0
		titleFlag, bodyFlag, userIDFlag = "", "", 0
		listenAddr, seedCount = ":8080", 10
	})
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestCommands_AgainstMockServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := httptest.NewServer(mockserver.NewHandler(mockserver.NewStore(mockserver.SamplePosts(1)...), l))
	defer s.Close()
	base := s.URL + "/posts"

	out, err := runRoot(t, "list", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "### sample post 1")

	out, err = runRoot(t, "create", "--base-url", base, "--title", "hello", "--body", "world")
	require.NoError(t, err)
	assert.Contains(t, out, "Post created successfully! ID: 2")
	assert.Contains(t, out, "### hello\nworld\n[id=2 userId=1]")

	out, err = runRoot(t, "delete", "2", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "Post 2 deleted successfully!")
	assert.NotContains(t, out, "### hello")

	out, err = runRoot(t, "delete", "9999", "--base-url", base)
	require.EqualError(t, err, "HTTP error! status: 404")
	assert.Contains(t, out, "HTTP error! status: 404")
}

func TestDelete_InvalidID(t *testing.T) {
	_, err := runRoot(t, "delete", "abc", "--base-url", "http://127.0.0.1:1/posts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id 不合法")
}

func TestInvalidBaseURL(t *testing.T) {
	_, err := runRoot(t, "list", "--base-url", "posts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseUrl")
}

func TestList_WithConfigFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := httptest.NewServer(mockserver.NewHandler(mockserver.NewStore(mockserver.SamplePosts(1)...), l))
	defer s.Close()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("baseUrl: "+s.URL+"/posts\nlogLevel: debug\n"), 0o644))

	out, err := runRoot(t, "list", "-f", cfgPath)
	require.NoError(t, err)
	// 标准输出只包含渲染结果，配置加载信息走日志
	assert.True(t, strings.HasPrefix(out, "Loading...\n"), out)
	assert.Contains(t, out, "### sample post 1")
}

func TestServe_NegativeSeed(t *testing.T) {
	_, err := runRoot(t, "serve", "--seed", "-1", "--addr", "127.0.0.1:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed 不能为负数")
}

func TestServe_StopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := runRootContext(t, ctx, "serve", "--addr", "127.0.0.1:0", "--seed", "3")
	require.NoError(t, err)
}
