package handler

import (
	"context"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tlevasseur/blog-api/internal/auth"
	"github.com/tlevasseur/blog-api/internal/model"
	"github.com/tlevasseur/blog-api/internal/queue"
	"github.com/tlevasseur/blog-api/internal/repository"
)

// In-memory fakes for the store interfaces. Mutating calls are counted
// so tests can assert that failed pipelines never reach persistence.

type fakeArticles struct {
	items   map[uint64]*model.Article
	nextID  uint64
	creates int
	updates int
	deletes int
}

func newFakeArticles() *fakeArticles {
	return &fakeArticles{items: map[uint64]*model.Article{}, nextID: 1}
}

func (f *fakeArticles) put(a *model.Article) *model.Article {
	if a.ID == 0 {
		a.ID = f.nextID
		f.nextID++
	} else if a.ID >= f.nextID {
		f.nextID = a.ID + 1
	}
	cp := *a
	f.items[a.ID] = &cp
	return f.items[a.ID]
}

func (f *fakeArticles) Create(_ context.Context, a *model.Article) error {
	f.creates++
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	f.put(a)
	return nil
}

func (f *fakeArticles) GetByID(_ context.Context, id uint64) (*model.Article, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, repository.ErrArticleNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArticles) ListByCategory(_ context.Context, categoryID uint64) ([]*model.Article, error) {
	var out []*model.Article
	for _, a := range f.items {
		if a.CategoryID == categoryID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeArticles) Update(_ context.Context, a *model.Article) error {
	if _, ok := f.items[a.ID]; !ok {
		return repository.ErrArticleNotFound
	}
	f.updates++
	f.put(a)
	return nil
}

func (f *fakeArticles) Delete(_ context.Context, id uint64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrArticleNotFound
	}
	f.deletes++
	delete(f.items, id)
	return nil
}

type fakeCategories struct {
	items   map[uint64]*model.Category
	nextID  uint64
	creates int
	updates int
	deletes int
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{items: map[uint64]*model.Category{}, nextID: 1}
}

func (f *fakeCategories) put(c *model.Category) {
	if c.ID == 0 {
		c.ID = f.nextID
		f.nextID++
	} else if c.ID >= f.nextID {
		f.nextID = c.ID + 1
	}
	cp := *c
	f.items[c.ID] = &cp
}

func (f *fakeCategories) Create(_ context.Context, c *model.Category) error {
	f.creates++
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	f.put(c)
	return nil
}

func (f *fakeCategories) GetByID(_ context.Context, id uint64) (*model.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategories) FindLast(_ context.Context, limit int) ([]*model.Category, error) {
	var out []*model.Category
	for id := f.nextID; id > 0 && len(out) < limit; id-- {
		if c, ok := f.items[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCategories) Update(_ context.Context, c *model.Category) error {
	if _, ok := f.items[c.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	f.updates++
	f.put(c)
	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id uint64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	f.deletes++
	delete(f.items, id)
	return nil
}

type fakeComments struct {
	items   map[uint64]*model.Comment
	nextID  uint64
	creates int
	updates int
}

func newFakeComments() *fakeComments {
	return &fakeComments{items: map[uint64]*model.Comment{}, nextID: 1}
}

func (f *fakeComments) put(c *model.Comment) {
	if c.ID == 0 {
		c.ID = f.nextID
		f.nextID++
	} else if c.ID >= f.nextID {
		f.nextID = c.ID + 1
	}
	cp := *c
	f.items[c.ID] = &cp
}

func (f *fakeComments) Create(_ context.Context, c *model.Comment) error {
	f.creates++
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	f.put(c)
	return nil
}

func (f *fakeComments) GetByID(_ context.Context, id uint64) (*model.Comment, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeComments) ListByArticle(_ context.Context, articleID uint64) ([]*model.Comment, error) {
	var out []*model.Comment
	for _, c := range f.items {
		if c.ArticleID == articleID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeComments) Update(_ context.Context, c *model.Comment) error {
	if _, ok := f.items[c.ID]; !ok {
		return repository.ErrCommentNotFound
	}
	f.updates++
	f.put(c)
	return nil
}

type fakeUsers struct {
	items  map[uint64]model.User
	nextID uint64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{items: map[uint64]model.User{}, nextID: 1}
}

func (f *fakeUsers) add(u model.User) model.User {
	if u.ID == 0 {
		u.ID = f.nextID
		f.nextID++
	} else if u.ID >= f.nextID {
		f.nextID = u.ID + 1
	}
	f.items[u.ID] = u
	return u
}

func (f *fakeUsers) Create(_ context.Context, email, password string, roles []string, cost int) (uint64, error) {
	for _, u := range f.items {
		if u.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	u := f.add(model.User{Email: email, PasswordHash: "hashed:" + password, Roles: roles})
	return u.ID, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.items {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := f.items[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

type fakeEvents struct {
	published []queue.ArticlePublishedEvent
	submitted []queue.CommentSubmittedEvent
}

func (f *fakeEvents) ArticlePublished(_ context.Context, ev queue.ArticlePublishedEvent) error {
	f.published = append(f.published, ev)
	return nil
}

func (f *fakeEvents) CommentSubmitted(_ context.Context, ev queue.CommentSubmittedEvent) error {
	f.submitted = append(f.submitted, ev)
	return nil
}

// testEnv bundles a handler wired to fresh fakes.
type testEnv struct {
	h          *ContentHandler
	articles   *fakeArticles
	categories *fakeCategories
	comments   *fakeComments
	users      *fakeUsers
	events     *fakeEvents
}

func newTestEnv() *testEnv {
	env := &testEnv{
		articles:   newFakeArticles(),
		categories: newFakeCategories(),
		comments:   newFakeComments(),
		users:      newFakeUsers(),
		events:     &fakeEvents{},
	}
	env.h = NewContentHandler(env.articles, env.categories, env.comments, env.users, env.events)
	return env
}

// newCtx builds an echo context for a handler call. id sets the :id path
// parameter when non-zero; principal, when non-nil, is injected the way
// the TokenAuth middleware would.
func newCtx(t *testing.T, method, path, body string, id uint64, principal *auth.Principal) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != 0 {
		c.SetParamNames("id")
		c.SetParamValues(strconv.FormatUint(id, 10))
	}
	if principal != nil {
		c.Set("principal", *principal)
	}
	return c, rec
}

func adminPrincipal(userID uint64) *auth.Principal {
	return &auth.Principal{UserID: userID, Roles: []string{auth.RoleAdmin}}
}
