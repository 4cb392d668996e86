package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	"manageme.app/hub/common/id"
	"manageme.app/hub/internal/favorites"
	"manageme.app/hub/internal/http/router"
	"manageme.app/hub/internal/queue"
	"manageme.app/hub/internal/service"
	"manageme.app/hub/internal/store"
)

const testAdminKey = "test-admin-key"

type mockProducer struct {
	mu       sync.Mutex
	enqueued []queue.Task
}

func (m *mockProducer) Enqueue(_ context.Context, task queue.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enqueued = append(m.enqueued, task)
	return nil
}

func (m *mockProducer) Close() error { return nil }

// memKV is an in-process stand-in for the redis-backed favorites store.
type memKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (kv *memKV) Get(_ context.Context, key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.data[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (kv *memKV) Set(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = value
	return nil
}

type api struct {
	engine   *gin.Engine
	mem      *store.Memory
	producer *mockProducer
}

// newAPI assembles the full route tree over a seeded in-memory store,
// the way the server binary does.
func newAPI(ctx context.Context) *api {
	gin.SetMode(gin.TestMode)
	Expect(id.Init(1)).To(Succeed())

	mem := store.NewMemory()
	Expect(store.SeedDemoData(ctx, mem)).To(Succeed())

	producer := &mockProducer{}
	services := service.NewServices(mem, producer)
	favs := favorites.NewRepository(newMemKV(), mem.Workspaces())

	engine := gin.New()
	router.SetupRoutes(engine, services, favs, mem.Users(), router.RouterConfig{
		AdminAPIKey: testAdminKey,
	})

	return &api{engine: engine, mem: mem, producer: producer}
}

// do performs a request as the given user. A nil body sends no payload;
// anything else is marshalled to JSON.
func (a *api) do(method, path, userID string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
	return resp
}
