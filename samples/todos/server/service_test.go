package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type test = func(t *testing.T)

func call(t *testing.T, server *Server, method string, path string, body string) map[string]any {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	server.Handler.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var resource map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resource))

	return resource
}

func loadsTodos(server *Server) test {
	return func(t *testing.T) {
		fake := faker.New()
		id := fake.UUID().V4()

		call(t, server, "POST", "/actions/get-request", ``)
		resource := call(t, server, "POST", "/actions/get-success",
			`[[{"id": "`+id+`", "title": "write tests", "done": false}]]`)

		get := resource["get"].(map[string]any)
		assert.Equal(t, false, get["fetching"])
		assert.Len(t, get["results"], 1)

		resource = call(t, server, "POST", "/actions/toggle-todo", `["`+id+`"]`)
		todo := resource["get"].(map[string]any)["results"].([]any)[0].(map[string]any)
		assert.Equal(t, true, todo["done"])
	}
}

func setsTheFilter(server *Server) test {
	return func(t *testing.T) {
		resource := call(t, server, "POST", "/dispatch", `{"type": "TEST_SET_FILTER", "filter": "done"}`)

		assert.Equal(t, "done", resource["filter"])
		assert.NotEqual(t, "00000000000000000000000000", resource["$revision"])
	}
}

func TestServer(t *testing.T) {
	t.Setenv("ACTION_PREFIX", "TEST_")
	t.Setenv("LOG_LEVEL", "error")

	server, cleanup, err := live(context.Background())
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, ":9080", server.Address)

	t.Run("loads todos", loadsTodos(server))
	t.Run("sets the filter", setsTheFilter(server))
}
