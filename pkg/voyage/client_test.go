package voyage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"invalid key"}`))
			return
		}

		var req voyage.EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if req.Input[0] == "short" {
			_, _ = w.Write([]byte(`{"data":[]}`))
			return
		}

		// Out of order on purpose; the client sorts by index.
		_, _ = w.Write([]byte(`{
			"object": "list",
			"data": [
				{"embedding": [0.4, 0.5], "index": 1},
				{"embedding": [0.1, 0.2], "index": 0}
			],
			"model": "` + req.Model + `",
			"usage": {"total_tokens": 12}
		}`))
	}))
	defer ts.Close()

	newClient := func(key string) *voyage.Client {
		c, err := voyage.New(voyage.Config{APIKey: key, BaseURL: ts.URL})
		require.NoError(t, err)
		return c
	}

	t.Run("Success", func(t *testing.T) {
		c := newClient("test-voyage-key")
		assert.Equal(t, voyage.DefaultModel, c.Model())

		vecs, err := c.Embed(context.Background(), []string{"Phố cổ Hội An", "Vịnh Hạ Long"}, voyage.InputDocument)
		require.NoError(t, err)
		require.Len(t, vecs, 2)
		assert.Equal(t, []float32{0.1, 0.2}, vecs[0])
		assert.Equal(t, []float32{0.4, 0.5}, vecs[1])
	})

	t.Run("Unauthorized", func(t *testing.T) {
		_, err := newClient("wrong").Embed(context.Background(), []string{"x"}, voyage.InputQuery)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid key")
	})

	t.Run("ServerError", func(t *testing.T) {
		_, err := newClient("test-voyage-key").Embed(context.Background(), []string{"cause_500"}, voyage.InputQuery)
		assert.Error(t, err)
	})

	t.Run("CountMismatch", func(t *testing.T) {
		_, err := newClient("test-voyage-key").Embed(context.Background(), []string{"short"}, voyage.InputQuery)
		assert.Error(t, err)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := newClient("test-voyage-key").Embed(context.Background(), nil, voyage.InputQuery)
		assert.Error(t, err)
	})

	t.Run("MissingKey", func(t *testing.T) {
		_, err := voyage.New(voyage.Config{})
		assert.Error(t, err)
	})
}
