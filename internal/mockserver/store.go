package mockserver

import (
	"sort"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	postssdk "github.com/wangdayong228/posts-client/pkg/posts-sdk"
)

var ErrNotFound = errors.New("post not found")

// Store 是内存中的 posts 集合，按 id 升序返回，新记录的 id 单调递增。
type Store struct {
	mu     sync.Mutex
	posts  map[int64]postssdk.Post
	nextID int64
}

func NewStore(seed ...postssdk.Post) *Store {
	s := &Store{posts: make(map[int64]postssdk.Post), nextID: 1}
	for _, p := range seed {
		s.posts[p.ID] = p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

// SamplePosts 生成 n 条示例数据，id 从 1 开始；n <= 0 时返回空切片。
func SamplePosts(n int) []postssdk.Post {
	if n < 0 {
		n = 0
	}
	out := make([]postssdk.Post, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, postssdk.Post{
			ID:     int64(i),
			Title:  "sample post " + strconv.Itoa(i),
			Body:   "body of sample post " + strconv.Itoa(i),
			UserID: int64((i-1)/10 + 1),
		})
	}
	return out
}

func (s *Store) List() []postssdk.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]postssdk.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Get(id int64) (postssdk.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return postssdk.Post{}, errors.Wrapf(ErrNotFound, "id=%d", id)
	}
	return p, nil
}

func (s *Store) Create(in postssdk.NewPost) postssdk.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := postssdk.Post{ID: s.nextID, Title: in.Title, Body: in.Body, UserID: in.UserID}
	s.posts[p.ID] = p
	s.nextID++
	return p
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return errors.Wrapf(ErrNotFound, "id=%d", id)
	}
	delete(s.posts, id)
	return nil
}
