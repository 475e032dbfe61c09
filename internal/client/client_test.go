package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/go-while/go-foxstarter/internal/config"
	"github.com/go-while/go-foxstarter/internal/models"
	"github.com/go-while/go-foxstarter/internal/web"
)

func newAPI(t *testing.T) *Client {
	s := web.NewServer(zaptest.NewLogger(t), config.NewDefaultConfig().Web)
	ts := httptest.NewServer(s.Router)
	t.Cleanup(ts.Close)
	return New(ts.URL+"/", ts.Client())
}

func TestCounterRoundTrip(t *testing.T) {
	requireT := require.New(t)
	c := newAPI(t)

	resp, err := c.Counter(t.Context(), models.ActionIncrement, 41)
	requireT.NoError(err)
	requireT.Equal(models.CounterResponse{Count: 42, Action: models.ActionIncrement, PreviousCount: 41}, resp)

	resp, err = c.Counter(t.Context(), models.ActionDecrement, 0)
	requireT.NoError(err)
	requireT.Equal(int64(-1), resp.Count)
	requireT.Equal(int64(0), resp.PreviousCount)
}

func TestThemeRoundTrip(t *testing.T) {
	requireT := require.New(t)
	c := newAPI(t)

	before := time.Now()
	resp, err := c.Theme(t.Context(), "dark")
	requireT.NoError(err)
	requireT.Equal("dark", resp.Theme)
	requireT.NotEmpty(resp.Message)
	requireT.False(resp.Timestamp.Before(before))
}

func TestMessages(t *testing.T) {
	requireT := require.New(t)
	c := newAPI(t)

	for _, ep := range []string{EndpointHello, EndpointTest, EndpointRegional, "/hello"} {
		resp, err := c.Message(t.Context(), ep)
		requireT.NoError(err)
		requireT.NotEmpty(resp.Message)
	}

	_, err := c.Message(t.Context(), "missing")
	requireT.Error(err)
	var se *StatusError
	requireT.True(errors.As(err, &se))
	requireT.Equal(http.StatusNotFound, se.StatusCode)
	requireT.Equal(models.KindNotFound, se.Kind)
}

func TestUnreachable(t *testing.T) {
	requireT := require.New(t)

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := New(url, nil).Counter(t.Context(), models.ActionIncrement, 1)
	requireT.ErrorIs(err, ErrUnreachable)
	requireT.NotErrorIs(err, ErrServerFault)
}

func TestStatusClassification(t *testing.T) {
	requireT := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/counter":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad","kind":"malformed_request"}`))
		case "/theme":
			http.Error(w, "kaput", http.StatusBadGateway)
		default:
			_, _ = w.Write([]byte("not json"))
		}
	}))
	defer ts.Close()
	c := New(ts.URL, ts.Client())

	_, err := c.Counter(t.Context(), models.ActionIncrement, 1)
	requireT.ErrorIs(err, ErrMalformedRequest)
	requireT.Contains(err.Error(), "malformed_request")

	_, err = c.Theme(t.Context(), "dark")
	requireT.ErrorIs(err, ErrServerFault)
	requireT.Contains(err.Error(), "kaput")

	_, err = c.Message(t.Context(), EndpointHello)
	requireT.ErrorIs(err, ErrBadResponse)
}
