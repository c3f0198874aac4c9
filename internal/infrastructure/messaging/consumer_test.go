package messaging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiebiao/bookstore-api/internal/domain/event"
)

func TestEventLogger_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewEventLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := context.Background()

	assert.NoError(t, h.Handle(ctx, event.BookRated, []byte(`{"book_id":7,"rating":"4.67"}`)))
	assert.Contains(t, buf.String(), `"msg":"book rated"`)
	assert.Contains(t, buf.String(), `"rating":"4.67"`)

	buf.Reset()
	assert.NoError(t, h.Handle(ctx, event.RelationUpdated, []byte(`{"user_id":1,"book_id":7,"like":true,"rate":5}`)))
	assert.Contains(t, buf.String(), `"msg":"relation updated"`)
	assert.Contains(t, buf.String(), `"book_id":7`)
}

func TestEventLogger_MalformedIsAcked(t *testing.T) {
	var buf bytes.Buffer
	h := NewEventLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := h.Handle(context.Background(), event.BookRated, []byte(`not json`))

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "malformed event dropped")
}

func TestEventLogger_RoutingKeys(t *testing.T) {
	h := NewEventLogger(slog.Default())
	assert.ElementsMatch(t, []string{event.RelationUpdated, event.BookRated}, h.RoutingKeys())
}
