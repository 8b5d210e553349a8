package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{Endpoint: srv.URL, Token: "tok-123", TimeoutMs: 2000})
}

func TestClient_IsAuthenticated(t *testing.T) {
	assert.True(t, NewClient(Config{Token: "x"}).IsAuthenticated())
	assert.False(t, NewClient(Config{}).IsAuthenticated())
}

func TestClient_ListBoardOrders(t *testing.T) {
	var gotPath, gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"o1","title":"Cartões","status":"FAZER"}]`))
	})

	orders, err := c.ListBoardOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/api/orders?board=1", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].ID)
	assert.Equal(t, "o1", *orders[0].ID)
}

func TestClient_CreateOrderPostsDraft(t *testing.T) {
	var got Draft
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"new-1","title":"Flyer A5","status":"FAZER"}`))
	})

	created, err := c.CreateOrder(context.Background(), Draft{Title: "Flyer A5", Status: "FAZER"})

	require.NoError(t, err)
	assert.Equal(t, "Flyer A5", got.Title)
	require.NotNil(t, created.ID)
	assert.Equal(t, "new-1", *created.ID)
}

func TestClient_UpdateOrderStatus(t *testing.T) {
	var gotBody map[string]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/o1/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.UpdateOrderStatus(context.Background(), "o1", "APROVADO", "aprovado por email")

	require.NoError(t, err)
	assert.Equal(t, "APROVADO", gotBody["status"])
	assert.Equal(t, "aprovado por email", gotBody["comment"])
}

func TestClient_UnauthorizedMapsToSentinel(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		})

		_, err := c.ListBoardOrders(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
}

func TestClient_ServerErrorIncludesBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "status is required", http.StatusBadRequest)
	})

	_, err := c.ListBoardOrders(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "status is required")
}

func TestClient_ConnectionRefusedMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	c := NewClient(Config{Endpoint: endpoint, Token: "x", TimeoutMs: 500})
	_, err := c.ListBoardOrders(context.Background())

	assert.ErrorIs(t, err, ErrUnavailable)
}
