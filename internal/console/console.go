package console

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	postssdk "github.com/wangdayong228/posts-client/pkg/posts-sdk"
	resourceclient "github.com/wangdayong228/posts-client/pkg/resource-client"
)

// PostsAPI 是 Console 依赖的三个操作，*postssdk.Posts 直接满足。
type PostsAPI interface {
	List(ctx context.Context) resourceclient.Result[[]postssdk.Post]
	Create(ctx context.Context, in postssdk.NewPost) resourceclient.Result[postssdk.Post]
	Delete(ctx context.Context, id int64) resourceclient.Result[int64]
}

// Console 把 ResourceClient 的结果渲染为 loading / success / error 文本。
// 自身不保存任何 post，每个流程都重新拉取。
type Console struct {
	Posts  PostsAPI
	Out    io.Writer
	Log    logrus.FieldLogger
	UserID int64
}

func New(posts PostsAPI, out io.Writer, log logrus.FieldLogger, userID int64) *Console {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Console{Posts: posts, Out: out, Log: log, UserID: userID}
}

// FetchPosts 拉取并输出全部 post。
func (c *Console) FetchPosts(ctx context.Context) error {
	c.printf("Loading...\n")

	res := c.Posts.List(ctx)
	if res.IsError() {
		return c.fail("list", res.Message, res.StatusCode)
	}

	for _, p := range res.Value {
		c.printf("\n### %s\n%s\n[id=%d userId=%d]\n", p.Title, p.Body, p.ID, p.UserID)
	}
	c.Log.WithField("count", len(res.Value)).Debug("posts rendered")
	return nil
}

// SubmitPost 创建一条 post，成功后重新拉取列表。
func (c *Console) SubmitPost(ctx context.Context, title, body string) error {
	c.printf("Submitting...\n")

	res := c.Posts.Create(ctx, postssdk.NewPost{Title: title, Body: body, UserID: c.UserID})
	if res.IsError() {
		return c.fail("create", res.Message, res.StatusCode)
	}

	c.printf("Post created successfully! ID: %d\n", res.Value.ID)
	return c.FetchPosts(ctx)
}

// DeletePost 删除一条 post，成功后重新拉取列表。
func (c *Console) DeletePost(ctx context.Context, id int64) error {
	res := c.Posts.Delete(ctx, id)
	if res.IsError() {
		return c.fail("delete", res.Message, res.StatusCode)
	}

	c.printf("Post %d deleted successfully!\n", res.Value)
	return c.FetchPosts(ctx)
}

// fail 原样输出 message，并以 error 返回给命令层决定退出码。
func (c *Console) fail(op, message string, status int) error {
	c.printf("%s\n", message)
	entry := c.Log.WithField("op", op)
	if status != 0 {
		entry = entry.WithField("status", status)
	}
	entry.Warn(message)
	return errors.New(message)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.Out, format, args...)
}
