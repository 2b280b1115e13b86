package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tlevasseur/blog-api/internal/validation"
)

// ContentHandler bundles the collaborators every content endpoint needs.
// Events may be nil, in which case no domain events are published.
type ContentHandler struct {
	Articles   ArticleStore
	Categories CategoryStore
	Comments   CommentStore
	Users      UserStore
	Events     EventPublisher
}

// NewContentHandler constructs a ContentHandler and panics if a required
// store is missing. Events is optional.
func NewContentHandler(articles ArticleStore, categories CategoryStore, comments CommentStore, users UserStore, events EventPublisher) *ContentHandler {
	if articles == nil || categories == nil || comments == nil || users == nil {
		panic("nil store passed to NewContentHandler")
	}
	return &ContentHandler{
		Articles:   articles,
		Categories: categories,
		Comments:   comments,
		Users:      users,
		Events:     events,
	}
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// bindFields decodes the JSON body into a Fields map. An empty body is
// treated as an empty map so a PATCH without a body is a clean no-op
// rather than a bind error.
func bindFields(c echo.Context) (validation.Fields, error) {
	body := validation.Fields{}
	if c.Request().ContentLength == 0 {
		return body, nil
	}
	if err := c.Bind(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// missingFields renders the 400 response for a creation request that
// lacks required fields, preserving the order they were declared in.
func missingFields(c echo.Context, names []string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error":  "missing parameters",
		"fields": names,
	})
}

// invalidEntity renders the 400 response carrying the validator's
// violations verbatim.
func invalidEntity(c echo.Context, vs []validation.Violation) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error":      "validation failed",
		"violations": vs,
	})
}

// nothingToUpdate renders the 200 no-op outcome for an update request
// whose recognized fields were all absent or null.
func nothingToUpdate(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "nothing to update"})
}
