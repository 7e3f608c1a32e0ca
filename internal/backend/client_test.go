package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL+"/", 5*time.Second, discardLogger)
}

func TestListItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/items", r.URL.Path)
		require.NotEmpty(t, r.Header.Get(requestIDHeader))
		w.Write([]byte(`[
			{"id": 1, "name": "milk", "quantity": 2, "expiry": "2026-10-20"},
			{"id": 2, "name": "rice", "quantity": 1},
			"garbage",
			{"id": "not a number"}
		]`))
	})

	items, err := client.ListItems(context.Background())
	require.NoError(t, err)
	require.Equal(t, []GroceryItem{
		{ID: 1, Name: "milk", Quantity: 2, Expiry: "2026-10-20"},
		{ID: 2, Name: "rice", Quantity: 1},
	}, items)
}

func TestListItemsDegradesOnNonArray(t *testing.T) {
	for _, body := range []string{`{"items": []}`, `null`, ``, `not json`} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		items, err := client.ListItems(context.Background())
		require.NoError(t, err, body)
		require.NotNil(t, items)
		require.Empty(t, items, body)
	}
}

func TestCreateItems(t *testing.T) {
	testCases := []struct {
		body    string
		message *string
		count   *float64
	}{
		{body: `{"message": "Added milk"}`, message: ptr("Added milk")},
		{body: `{"count": 3}`, count: ptr(3.0)},
		{body: `{"count": 2.7}`, count: ptr(2.7)},
		{body: `{"message": "Added eggs", "count": 12}`, message: ptr("Added eggs"), count: ptr(12.0)},
		{body: `{"message": 5, "count": "3"}`},
		{body: `{}`},
		{body: `ok`},
	}
	for _, tc := range testCases {
		t.Run(tc.body, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "application/json", r.Header.Get("Content-Type"))
				var request CreateItemsRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
				require.Equal(t, "add milk", request.Prompt)
				w.Write([]byte(tc.body))
			})
			response, err := client.CreateItems(context.Background(), "add milk")
			require.NoError(t, err)
			require.Equal(t, tc.message, response.Message)
			require.Equal(t, tc.count, response.Count)
		})
	}
}

func TestHTTPErrors(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		errorText   string
		rateLimited bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error": "quota"}`, errorText: "quota", rateLimited: true},
		{name: "structured", status: http.StatusBadRequest, body: `{"error": "could not parse prompt"}`, errorText: "could not parse prompt"},
		{name: "plain", status: http.StatusInternalServerError, body: `boom`},
		{name: "no error field", status: http.StatusNotFound, body: `{"detail": "missing"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			_, err := client.CreateItems(context.Background(), "add milk")
			var httpErr *HTTPError
			require.True(t, errors.As(err, &httpErr))
			require.Equal(t, tc.status, httpErr.StatusCode)
			require.Equal(t, http.StatusText(tc.status), httpErr.StatusText)
			require.Equal(t, tc.errorText, httpErr.ErrorText)
			require.Equal(t, tc.rateLimited, httpErr.IsRateLimited())
		})
	}
}

func TestNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := New(url, time.Second, discardLogger)
	_, err := client.ListItems(context.Background())
	var networkErr *NetworkError
	require.True(t, errors.As(err, &networkErr))
}

func TestTimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := New(server.URL, 50*time.Millisecond, discardLogger)
	_, err := client.Expiry(context.Background())
	var networkErr *NetworkError
	require.True(t, errors.As(err, &networkErr))
}

func TestExpiry(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		kind    ExpiryKind
		entries []string
	}{
		{name: "empty body", body: ``, kind: ExpiryEmpty},
		{name: "null", body: `null`, kind: ExpiryEmpty},
		{name: "empty array", body: `[]`, kind: ExpiryEmpty},
		{name: "empty object", body: `{}`, kind: ExpiryEmpty},
		{name: "list", body: `["milk (2026-10-19)", "eggs (2026-10-21)"]`, kind: ExpiryList, entries: []string{"milk (2026-10-19)", "eggs (2026-10-21)"}},
		{name: "list of objects", body: `[{"name": "milk"}]`, kind: ExpiryList, entries: []string{`{"name": "milk"}`}},
		{name: "object", body: `{"milk": "2026-10-19"}`, kind: ExpiryObject},
		{name: "scalar", body: `"nothing"`, kind: ExpiryObject},
		{name: "text", body: `nothing expires`, kind: ExpiryObject},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/expiry", r.URL.Path)
				w.Write([]byte(tc.body))
			})
			response, err := client.Expiry(context.Background())
			require.NoError(t, err)
			require.Equal(t, tc.kind, response.Kind)
			require.Equal(t, tc.entries, response.Entries)
		})
	}
}

func TestExpiryPretty(t *testing.T) {
	response := parseExpiry([]byte(`{"milk":"2026-10-19","eggs":["a","b"]}`))
	require.Equal(t, ExpiryObject, response.Kind)
	require.Equal(t, "{\n  \"milk\": \"2026-10-19\",\n  \"eggs\": [\"a\", \"b\"]\n}", response.Pretty())

	text := parseExpiry([]byte("  nothing expires \n"))
	require.Equal(t, "nothing expires", text.Pretty())
}

func ptr[T any](v T) *T {
	return &v
}
