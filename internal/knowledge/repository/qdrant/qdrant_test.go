package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/knowledge"
	"travel-assistant/pkg/log"
	pkgQdrant "travel-assistant/pkg/qdrant"
	"travel-assistant/pkg/voyage"
)

type constEmbedder struct{}

func (constEmbedder) Embed(ctx context.Context, texts []string, _ voyage.InputType) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

func (constEmbedder) Model() string { return "const" }

type fakeQdrant struct {
	mu      sync.Mutex
	created bool
	points  []pkgQdrant.Point
	search  pkgQdrant.SearchRequest
}

func (f *fakeQdrant) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/collections/travel":
			if !f.created {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"status":{"error":"not found"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"result":{}}`))
		case r.Method == http.MethodPut && r.URL.Path == "/collections/travel":
			f.created = true
			_, _ = w.Write([]byte(`{"result":true}`))
		case r.Method == http.MethodPut && r.URL.Path == "/collections/travel/points":
			var req pkgQdrant.UpsertPointsRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			f.points = append(f.points, req.Points...)
			_, _ = w.Write([]byte(`{"result":{}}`))
		case r.URL.Path == "/collections/travel/points/count":
			_ = json.NewEncoder(w).Encode(map[string]any{"result": map[string]int{"count": len(f.points)}})
		case r.URL.Path == "/collections/travel/points/search":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&f.search))
			var result []pkgQdrant.ScoredPoint
			for _, p := range f.points {
				result = append(result, pkgQdrant.ScoredPoint{ID: p.ID, Score: 0.9, Payload: p.Payload})
			}
			result = append(result, pkgQdrant.ScoredPoint{ID: "broken", Score: 0.1, Payload: map[string]interface{}{}})
			_ = json.NewEncoder(w).Encode(map[string]any{"result": result})
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
		}
	})
}

func TestIndexSearchCount(t *testing.T) {
	ctx := context.Background()
	fake := &fakeQdrant{}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	r := New(pkgQdrant.NewClient(srv.URL), constEmbedder{}, "travel", 3, log.NewNop())
	assert.Equal(t, "qdrant", r.Name())

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "missing collection counts as empty")

	doc := knowledge.Document{ID: "hà nội/food/0/0", Content: "phở bò", Type: knowledge.TypeFood, Destination: "hà nội"}
	require.NoError(t, r.Index(ctx, []knowledge.Document{doc}))
	assert.True(t, fake.created)
	require.Len(t, fake.points, 1)
	assert.Equal(t, PointID(doc.ID), fake.points[0].ID)

	n, err = r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := r.Search(ctx, knowledge.SearchOptions{Query: "phở", Destination: "hà nội", Type: knowledge.TypeFood})
	require.NoError(t, err)
	require.Len(t, got, 1, "points without content are skipped")
	assert.Equal(t, doc, got[0].Document)
	assert.InDelta(t, 0.9, got[0].Score, 1e-9)

	assert.Equal(t, knowledge.DefaultTopK, fake.search.Limit)
	assert.True(t, fake.search.WithPayload)
	must, ok := fake.search.Filter["must"].([]interface{})
	require.True(t, ok)
	assert.Len(t, must, 2)
}

func TestPointID(t *testing.T) {
	id := PointID("sa pa/tip/0/0")
	assert.Equal(t, id, PointID("sa pa/tip/0/0"))
	assert.NotEqual(t, id, PointID("sa pa/tip/0/1"))
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestBuildFilter(t *testing.T) {
	assert.Nil(t, buildFilter(knowledge.SearchOptions{Query: "x"}))

	f := buildFilter(knowledge.SearchOptions{Query: "x", Type: knowledge.TypeTip})
	raw, err := json.Marshal(f)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"key":"type"`))
	assert.True(t, strings.Contains(string(raw), `"value":"tip"`))
}
