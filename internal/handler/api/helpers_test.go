package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/fhuszti/showcase-ms-go/internal/api_context"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

var testID = uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

func itoa(i int) string { return strconv.Itoa(i) }

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// newRequest builds a request with an optional body and, when withID is set,
// the ID the WithID middleware would have stored.
func newRequest(method, target, body string, withID bool) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if withID {
		req = req.WithContext(api_context.WithID(req.Context(), testID))
	}
	return req
}

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

type eventManager struct {
	out *model.Event
	err error
}

func (m *eventManager) CreateEvent(context.Context, port.EventInput) (*model.Event, error) {
	return m.out, m.err
}

func (m *eventManager) DeleteEvent(context.Context, uuid.UUID) error { return m.err }
