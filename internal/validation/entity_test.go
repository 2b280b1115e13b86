package validation

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tlevasseur/blog-api/internal/model"
)

func validArticle() *model.Article {
	a := model.NewArticle()
	a.Title = "T"
	a.Content = "C"
	a.Category = &model.Category{ID: 5, Title: "News"}
	a.CategoryID = 5
	return a
}

func TestValidateArticle_Valid(t *testing.T) {
	if vs := ValidateArticle(validArticle()); len(vs) != 0 {
		t.Fatalf("expected valid article, got %v", vs)
	}
}

func TestValidateArticle_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(a *model.Article)
		field  string
	}{
		{"empty title", func(a *model.Article) { a.Title = "" }, "title"},
		{"title too long", func(a *model.Article) { a.Title = strings.Repeat("x", 256) }, "title"},
		{"empty content", func(a *model.Article) { a.Content = "" }, "content"},
		{"nil category", func(a *model.Article) { a.Category = nil }, "category"},
		{"bad state", func(a *model.Article) { a.State = "junk" }, "state"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validArticle()
			tc.mutate(a)
			vs := ValidateArticle(a)
			if len(vs) != 1 {
				t.Fatalf("expected one violation, got %v", vs)
			}
			if vs[0].Field != tc.field {
				t.Errorf("expected violation on %q, got %q", tc.field, vs[0].Field)
			}
		})
	}
}

func TestValidateArticle_Idempotent(t *testing.T) {
	a := validArticle()
	a.Title = ""
	first := ValidateArticle(a)
	second := ValidateArticle(a)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v then %v", first, second)
	}
}

func TestValidateCategory(t *testing.T) {
	if vs := ValidateCategory(&model.Category{Title: "News"}); len(vs) != 0 {
		t.Fatalf("expected valid category, got %v", vs)
	}
	if vs := ValidateCategory(&model.Category{}); len(vs) != 1 || vs[0].Field != "title" {
		t.Fatalf("expected title violation, got %v", vs)
	}
	long := &model.Category{Title: strings.Repeat("x", 256)}
	if vs := ValidateCategory(long); len(vs) != 1 || vs[0].Field != "title" {
		t.Fatalf("expected title length violation, got %v", vs)
	}
}

func TestValidateComment(t *testing.T) {
	c := model.NewComment()
	c.Text = "nice read"
	if vs := ValidateComment(c); len(vs) != 0 {
		t.Fatalf("expected valid comment, got %v", vs)
	}

	empty := model.NewComment()
	if vs := ValidateComment(empty); len(vs) != 1 || vs[0].Field != "comment" {
		t.Fatalf("expected comment violation, got %v", vs)
	}

	bad := model.NewComment()
	bad.Text = "x"
	bad.State = "liked"
	if vs := ValidateComment(bad); len(vs) != 1 || vs[0].Field != "state" {
		t.Fatalf("expected state violation, got %v", vs)
	}
}

func TestValidateComment_AllModerationStates(t *testing.T) {
	for _, s := range []model.ModerationState{model.ModerationPending, model.ModerationApproved, model.ModerationRejected} {
		c := model.NewComment()
		c.Text = "x"
		c.State = s
		if vs := ValidateComment(c); len(vs) != 0 {
			t.Errorf("state %q: expected valid, got %v", s, vs)
		}
	}
}
