package mockserver

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nft-rainbow/rainbow-goutils/utils/ginutils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	postssdk "github.com/wangdayong228/posts-client/pkg/posts-sdk"
)

// NewHandler 以 jsonplaceholder 的形式暴露 store：
// GET/POST /posts，GET/DELETE /posts/:id。错误响应体为 ginutils.GinErrorBody。
func NewHandler(store *Store, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	g := r.Group("/posts")
	g.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.List())
	})
	g.POST("", func(c *gin.Context) {
		var in postssdk.NewPost
		if err := c.ShouldBindJSON(&in); err != nil {
			abort(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, store.Create(in))
	})
	g.GET("/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		p, err := store.Get(id)
		if err != nil {
			abort(c, http.StatusNotFound, err.Error())
			return
		}
		c.JSON(http.StatusOK, p)
	})
	g.DELETE("/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := store.Delete(id); err != nil {
			abort(c, http.StatusNotFound, err.Error())
			return
		}
		// 与 jsonplaceholder 一致，删除成功返回空对象
		c.JSON(http.StatusOK, gin.H{})
	})
	return r
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abort(c, http.StatusNotFound, "invalid id: "+c.Param("id"))
		return 0, false
	}
	return id, true
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ginutils.GinErrorBody{Code: status, Message: message})
}

func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed":    time.Since(start),
			"request_id": c.GetHeader("X-Request-Id"),
		}).Info("mockserver request")
	}
}

// Serve 在 addr 上运行 handler，ctx 结束时优雅关闭。
func Serve(ctx context.Context, addr string, handler http.Handler, log logrus.FieldLogger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "mockserver 启动失败")
	}
	return ServeListener(ctx, ln, handler, log)
}

// ServeListener 与 Serve 相同，但使用已经打开的 ln，返回时 ln 已关闭。
func ServeListener(ctx context.Context, ln net.Listener, handler http.Handler, log logrus.FieldLogger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", ln.Addr().String()).Info("mockserver listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "mockserver 运行失败")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "mockserver 关闭失败")
		}
		log.Info("mockserver stopped")
		return nil
	}
}
