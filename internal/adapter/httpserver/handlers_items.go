package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/todolist/internal/domain"
	apperrors "github.com/pscheid92/todolist/internal/platform/errors"
)

// createItemRequest uses pointers so a missing field can be told apart from
// its zero value. Keys match exactly; unknown ones, including "id", are ignored.
type createItemRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

var errTrailingData = errors.New("unexpected data after JSON object")

// decodeCreateItemRequest reads exactly one JSON object from r. Unlike
// echo's binder it does not fold key case and rejects anything after the object.
func decodeCreateItemRequest(r *http.Request) (createItemRequest, error) {
	var req createItemRequest
	if ct := r.Header.Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
		return req, fmt.Errorf("unsupported content type %q", ct)
	}

	dec := json.NewDecoder(r.Body)
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return req, fmt.Errorf("decode body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return req, errTrailingData
	}

	if raw, ok := fields["title"]; ok {
		if err := json.Unmarshal(raw, &req.Title); err != nil {
			return req, fmt.Errorf("decode title: %w", err)
		}
	}
	if raw, ok := fields["completed"]; ok {
		if err := json.Unmarshal(raw, &req.Completed); err != nil {
			return req, fmt.Errorf("decode completed: %w", err)
		}
	}
	return req, nil
}

func (r createItemRequest) validate() error {
	if r.Title == nil {
		return apperrors.ValidationError("title is required").WithField("field", "title")
	}
	if r.Completed == nil {
		return apperrors.ValidationError("completed is required").WithField("field", "completed")
	}
	return nil
}

func (s *Server) registerItemRoutes() {
	s.echo.GET("/items", s.handleListItems)
	s.echo.POST("/items", s.handleAddItem)
}

func (s *Server) handleListItems(c echo.Context) error {
	items, err := s.app.ListItems(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list items", err)
	}

	if err := c.JSON(http.StatusOK, items); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleAddItem(c echo.Context) error {
	req, err := decodeCreateItemRequest(c.Request())
	if err != nil {
		return apperrors.ValidationError("malformed request body").WithCause(err)
	}
	if err := req.validate(); err != nil {
		return err
	}

	items, err := s.app.AddItem(c.Request().Context(), domain.NewItem{
		Title:     *req.Title,
		Completed: *req.Completed,
	})
	if err != nil {
		return apperrors.InternalError("failed to add item", err)
	}

	if err := c.JSON(http.StatusOK, items); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
