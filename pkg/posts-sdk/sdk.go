package postssdk

import (
	resourceclient "github.com/wangdayong228/posts-client/pkg/resource-client"
)

const DefaultBaseURL = "https://jsonplaceholder.typicode.com/posts"

// Posts 是绑定到 /posts 集合的 ResourceClient。
type Posts = resourceclient.Client[Post, NewPost]

// Client 是 SDK 对外入口，按资源分组。
type Client struct {
	Posts *Posts
}

// New 以集合地址（例如 https://host/posts）创建客户端，baseURL 为空时使用 DefaultBaseURL。
func New(baseURL string, opts ...resourceclient.Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	hc := resourceclient.NewHTTPClient(baseURL, opts...)
	return &Client{
		Posts: resourceclient.New[Post, NewPost](hc, resourceclient.Names{Singular: "post", Plural: "posts"}),
	}
}
