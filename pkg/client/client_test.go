package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestClientDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":{"id":7,"name":"Bujía"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	var out testItem
	require.NoError(t, c.Get(context.Background(), "/api/products/7", nil, &out))
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "Bujía", out.Name)
}

func TestClientSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"status":"error","message":"ya existe un cliente con ese DNI"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Post(context.Background(), "/api/clients", map[string]string{"dni": "123"}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "ya existe un cliente con ese DNI", apiErr.Message)
	assert.Equal(t, "ya existe un cliente con ese DNI", err.Error())
}

func TestGetPageSendsPagination(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"status":"success","data":{"content":[{"id":1,"name":"Filtro"}],"totalElements":41,"page":2,"size":12}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	q := url.Values{"search": {"fil"}}
	page, err := GetPage[testItem](context.Background(), c, "/api/products", q, 2, 12)
	require.NoError(t, err)

	assert.Equal(t, "fil", gotQuery.Get("search"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "12", gotQuery.Get("size"))
	assert.Equal(t, int64(41), page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Filtro", page.Content[0].Name)
}
