package postssdk

// 字段名与 jsonplaceholder 的 /posts 保持一致（userId 为驼峰）。

// Post 是服务端返回的记录，ID 由服务端分配。
type Post struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int64  `json:"userId"`
}

// NewPost 是创建时提交的内容，不带 id；title/body 允许为空，由服务端校验。
type NewPost struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int64  `json:"userId"`
}
