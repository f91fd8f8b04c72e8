package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autotech/taller-api/internal/application/usecase"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
	apphttp "github.com/autotech/taller-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type memClientRepo struct {
	clients map[int64]*entity.Client
	nextID  int64
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{clients: map[int64]*entity.Client{}}
}

func (r *memClientRepo) Create(c *entity.Client) error {
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.clients[c.ID] = c
	return nil
}

func (r *memClientRepo) GetByID(id int64) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *memClientRepo) GetByDNI(dni string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.DNI == dni {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memClientRepo) List(filter repository.ClientFilter) ([]*entity.Client, int64, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.FirstName), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *memClientRepo) Update(c *entity.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.clients[c.ID] = c
	return nil
}

func (r *memClientRepo) Delete(id int64) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *memClientRepo) CountCreatedBetween(from, to time.Time) (int64, error) {
	return int64(len(r.clients)), nil
}

// buildClientApp monta las rutas de clientes sobre el repositorio en memoria.
func buildClientApp(repo *memClientRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewClientHandler(usecase.NewClientUseCase(repo))
	api := app.Group("/api")
	api.Post("/clients", h.Create)
	api.Get("/clients", h.List)
	api.Get("/clients/:id", h.GetByID)
	api.Put("/clients/:id", h.Update)
	api.Delete("/clients/:id", h.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestClientCreateAndGet(t *testing.T) {
	app := buildClientApp(newMemClientRepo())

	resp, body := doJSON(t, app, http.MethodPost, "/api/clients",
		`{"firstName":"Laura","lastName":"Gómez","dni":"30111222","clientType":"PERSONAL"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "Laura Gómez", data["fullName"])
	id := int64(data["id"].(float64))

	resp, body = doJSON(t, app, http.MethodGet, "/api/clients/1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(id), body["data"].(map[string]any)["id"])
}

func TestClientCreateRejectsIncompleteRegistered(t *testing.T) {
	app := buildClientApp(newMemClientRepo())

	resp, body := doJSON(t, app, http.MethodPost, "/api/clients",
		`{"firstName":"Laura","clientType":"PERSONAL"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "apellido")
}

func TestClientCreateDuplicateDNI(t *testing.T) {
	app := buildClientApp(newMemClientRepo())

	payload := `{"firstName":"Laura","lastName":"Gómez","dni":"30111222","clientType":"PERSONAL"}`
	resp, _ := doJSON(t, app, http.MethodPost, "/api/clients", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/clients", payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
}

func TestClientGetNotFound(t *testing.T) {
	app := buildClientApp(newMemClientRepo())

	resp, body := doJSON(t, app, http.MethodGet, "/api/clients/99", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
}

func TestClientInvalidID(t *testing.T) {
	app := buildClientApp(newMemClientRepo())

	resp, _ := doJSON(t, app, http.MethodGet, "/api/clients/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestClientListEnvelope(t *testing.T) {
	repo := newMemClientRepo()
	app := buildClientApp(repo)

	_, _ = doJSON(t, app, http.MethodPost, "/api/clients",
		`{"firstName":"Laura","lastName":"Gómez","dni":"30111222","clientType":"PERSONAL"}`)
	_, _ = doJSON(t, app, http.MethodPost, "/api/clients",
		`{"firstName":"Pedro","clientType":"TEMPORAL"}`)

	resp, body := doJSON(t, app, http.MethodGet, "/api/clients?search=lau&page=0&size=12", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["totalElements"])
	assert.Equal(t, float64(0), data["page"])
	assert.Equal(t, float64(12), data["size"])
	require.Len(t, data["content"], 1)
}

func TestClientDelete(t *testing.T) {
	app := buildClientApp(newMemClientRepo())

	_, _ = doJSON(t, app, http.MethodPost, "/api/clients",
		`{"firstName":"Pedro","clientType":"TEMPORAL"}`)

	resp, body := doJSON(t, app, http.MethodDelete, "/api/clients/1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "cliente eliminado", body["message"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/clients/1", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
