package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/report"
	"github.com/spec-kit/helpdesk/internal/repository"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/storage"
)

const testPassword = "segredo123"

type testServer struct {
	app     *fiber.App
	metrics *observability.Metrics
	tokens  map[string]string
	uploads string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()
	authCfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 60, BcryptCost: bcrypt.MinCost}

	users := repository.NewMemoryUserRepository()
	authService := service.NewAuthService(authCfg, service.AuthDependencies{UserRepo: users, Logger: logger})
	dispatcher := events.NewInMemoryDispatcher(logger)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:        repository.NewMemoryTicketRepository(),
		Dispatcher:        dispatcher,
		StrictTransitions: true,
	})
	disk, err := storage.NewDisk(t.TempDir(), 1024*1024)
	require.NoError(t, err)

	srv := &testServer{metrics: observability.NewMetrics(), tokens: map[string]string{}, uploads: disk.Dir()}
	seed := []service.CreateUserInput{
		{Name: "Admin TI", Email: "admin@empresa.com", Role: "admin", Department: string(domain.DepartmentIT)},
		{Name: "Bruno", Email: "bruno@empresa.com", Department: string(domain.DepartmentIT)},
		{Name: "Ana", Email: "ana@empresa.com", Department: string(domain.DepartmentFinance)},
	}
	for _, input := range seed {
		input.Password = testPassword
		user, err := authService.CreateUser(context.Background(), input)
		require.NoError(t, err)
		token, _, err := authService.TokenManager().GenerateToken(user.ID, user.Role)
		require.NoError(t, err)
		srv.tokens[user.Name] = token
	}

	srv.app = fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	RegisterMiddlewares(srv.app, logger, srv.metrics, 5*time.Second)
	RegisterRoutes(srv.app, RouteConfig{
		Health:            handlers.NewHealthHandler("helpdesk", "test", nil, nil, srv.metrics),
		Users:             handlers.NewUsersHandler(authService),
		Tickets:           handlers.NewTicketsHandler(ticketService),
		DepartmentTickets: handlers.NewDepartmentTicketsHandler(ticketService),
		Uploads:           handlers.NewUploadsHandler(disk, logger),
		Navigation:        handlers.NewNavigationHandler(),
		Reports:           handlers.NewReportsHandler(ticketService, logger),
		AuthMiddleware:    auth.NewAuthMiddleware(authService.TokenManager()),
		UserRepo:          users,
		UploadsDir:        disk.Dir(),
	})
	return srv
}

func (s *testServer) do(t *testing.T, method, path, who string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if who != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.tokens[who])
	}
	return s.send(t, req)
}

func (s *testServer) send(t *testing.T, req *nethttp.Request) (int, []byte) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func (s *testServer) createTicket(t *testing.T, who string, dept domain.Department) map[string]any {
	t.Helper()
	status, raw := s.do(t, fiber.MethodPost, "/api/tickets", who, map[string]any{
		"titulo":       "Impressora sem toner",
		"descricao":    "A impressora do 2º andar parou",
		"prioridade":   "alta",
		"departamento": dept,
		"imagens":      []string{"/uploads/files-1-1.png"},
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	return decode[map[string]any](t, raw)
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	status, raw := srv.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{"email": "ANA@empresa.com", "senha": testPassword})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	resp := decode[map[string]any](t, raw)
	assert.NotEmpty(t, resp["token"])
	assert.NotEmpty(t, resp["expiraEm"])
	user := resp["usuario"].(map[string]any)
	assert.Equal(t, "Ana", user["nome"])
	assert.Equal(t, "Financeiro", user["departamento"])
	assert.NotContains(t, string(raw), "senha")

	status, raw = srv.do(t, fiber.MethodPost, "/api/auth/login", "", map[string]string{"email": "ana@empresa.com", "senha": "errada"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHENTICATED", decode[errorBody](t, raw).Error.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	status, raw := srv.do(t, fiber.MethodGet, "/api/tickets", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHENTICATED", decode[errorBody](t, raw).Error.Code)

	req := httptest.NewRequest(fiber.MethodGet, "/api/tickets", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
	status, raw = srv.send(t, req)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", decode[errorBody](t, raw).Error.Code)
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	srv := newTestServer(t)

	status, raw := srv.do(t, fiber.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, raw).Error.Code)
}

func TestCreateListAndGetTicket(t *testing.T) {
	srv := newTestServer(t)
	created := srv.createTicket(t, "Ana", domain.DepartmentIT)

	assert.Equal(t, "open", created["status"])
	assert.Equal(t, "high", created["prioridade"])
	assert.Equal(t, "Ana", created["criadoPorNome"])
	assert.Equal(t, "Financeiro", created["criadoPorDepartamento"])
	assert.Equal(t, []any{}, created["mensagens"])

	status, raw := srv.do(t, fiber.MethodGet, "/api/tickets", "Bruno", nil)
	require.Equal(t, fiber.StatusOK, status)
	list := decode[[]map[string]any](t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, created["id"], list[0]["id"])

	status, raw = srv.do(t, fiber.MethodGet, "/api/tickets?status=resolvido", "Bruno", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Empty(t, decode[[]map[string]any](t, raw))

	status, raw = srv.do(t, fiber.MethodGet, "/api/tickets?q=TONER&departamento=TI", "Bruno", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Len(t, decode[[]map[string]any](t, raw), 1)

	status, raw = srv.do(t, fiber.MethodGet, "/api/tickets/"+created["id"].(string), "Bruno", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{"/uploads/files-1-1.png"}, decode[map[string]any](t, raw)["imagens"])

	status, _ = srv.do(t, fiber.MethodGet, "/api/tickets/missing", "Bruno", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestListTicketsRejectsBadQuery(t *testing.T) {
	srv := newTestServer(t)

	status, raw := srv.do(t, fiber.MethodGet, "/api/tickets?status=whatever", "Ana", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", decode[errorBody](t, raw).Error.Code)
}

func TestCreateTicketValidation(t *testing.T) {
	srv := newTestServer(t)

	status, raw := srv.do(t, fiber.MethodPost, "/api/tickets", "Ana", map[string]any{"titulo": " "})
	require.Equal(t, fiber.StatusBadRequest, status)
	details := decode[errorBody](t, raw).Error.Details
	assert.Contains(t, details, "titulo")
	assert.Contains(t, details, "descricao")
	assert.Contains(t, details, "departamento")
}

func TestStatusTransitions(t *testing.T) {
	srv := newTestServer(t)
	id := srv.createTicket(t, "Ana", domain.DepartmentIT)["id"].(string)
	path := "/api/tickets/" + id + "/status"

	status, _ := srv.do(t, fiber.MethodPatch, path, "Bruno", map[string]string{"status": "bogus"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, raw := srv.do(t, fiber.MethodPatch, path, "Bruno", map[string]string{"status": "resolved"})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Equal(t, "resolved", decode[map[string]any](t, raw)["status"])

	status, raw = srv.do(t, fiber.MethodPatch, path, "Bruno", map[string]string{"status": "open"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", decode[errorBody](t, raw).Error.Code)
}

func TestConversation(t *testing.T) {
	srv := newTestServer(t)
	id := srv.createTicket(t, "Ana", domain.DepartmentIT)["id"].(string)
	path := "/api/tickets/" + id + "/respostas"

	status, raw := srv.do(t, fiber.MethodPost, path, "Bruno", map[string]any{
		"resposta": "Vou verificar",
		"anexos":   []map[string]string{{"type": "image", "url": "/uploads/files-2-2.png"}},
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	msg := decode[map[string]any](t, raw)
	assert.Equal(t, "Bruno", msg["userName"])
	assert.Len(t, msg["attachments"], 1)

	status, raw = srv.do(t, fiber.MethodPost, path, "Bruno", map[string]any{"resposta": "  "})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", decode[errorBody](t, raw).Error.Code)

	status, _ = srv.do(t, fiber.MethodPost, "/api/tickets/missing/respostas", "Bruno", map[string]any{"resposta": "oi"})
	assert.Equal(t, fiber.StatusNotFound, status)

	_, raw = srv.do(t, fiber.MethodGet, "/api/tickets/"+id, "Ana", nil)
	assert.Len(t, decode[map[string]any](t, raw)["mensagens"], 1)
}

func TestDepartmentQueueAssignAndFinish(t *testing.T) {
	srv := newTestServer(t)
	id := srv.createTicket(t, "Ana", domain.DepartmentIT)["id"].(string)

	status, raw := srv.do(t, fiber.MethodGet, "/api/tickets/departamento", "Bruno", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]map[string]any](t, raw), 1)

	status, raw = srv.do(t, fiber.MethodGet, "/api/tickets/departamento", "Ana", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, decode[[]map[string]any](t, raw))

	status, _ = srv.do(t, fiber.MethodPost, "/api/tickets/"+id+"/atribuir", "Ana", nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, raw = srv.do(t, fiber.MethodPost, "/api/tickets/"+id+"/atribuir", "Bruno", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assigned := decode[map[string]any](t, raw)
	assert.Equal(t, "in_progress", assigned["status"])
	assert.Equal(t, "TI", assigned["atribuidoPara"])
	assert.Equal(t, "Bruno", assigned["atribuidoParaNome"])

	status, raw = srv.do(t, fiber.MethodPost, "/api/tickets/"+id+"/finalizar", "Bruno", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	finished := decode[map[string]any](t, raw)
	assert.Equal(t, "resolved", finished["status"])
	messages := finished["mensagens"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, service.FinishMessage, messages[0].(map[string]any)["content"])

	status, _ = srv.do(t, fiber.MethodPost, "/api/tickets/"+id+"/finalizar", "Bruno", nil)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	srv := newTestServer(t)
	payload := map[string]string{
		"nome":         "Diego",
		"email":        "diego@empresa.com",
		"senha":        testPassword,
		"departamento": "Marketing",
	}

	status, _ := srv.do(t, fiber.MethodPost, "/api/users", "Ana", payload)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, raw := srv.do(t, fiber.MethodPost, "/api/users", "Admin TI", payload)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	created := decode[map[string]any](t, raw)["usuario"].(map[string]any)
	assert.Equal(t, "user", created["cargo"])

	status, raw = srv.do(t, fiber.MethodPost, "/api/users", "Admin TI", payload)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", decode[errorBody](t, raw).Error.Code)
}

func TestListUsersRequiresAdmin(t *testing.T) {
	srv := newTestServer(t)

	status, _ := srv.do(t, fiber.MethodGet, "/api/users", "Bruno", nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = srv.do(t, fiber.MethodGet, "/api/users", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, raw := srv.do(t, fiber.MethodGet, "/api/users", "Admin TI", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	users := decode[[]map[string]any](t, raw)
	require.Len(t, users, 3)
	names := make([]any, 0, len(users))
	for _, user := range users {
		names = append(names, user["nome"])
		assert.NotContains(t, user, "senha")
		assert.NotContains(t, user, "password_hash")
	}
	assert.Equal(t, []any{"Admin TI", "Ana", "Bruno"}, names)
}

func TestReportsAreLimitedToITAdmins(t *testing.T) {
	srv := newTestServer(t)
	srv.createTicket(t, "Ana", domain.DepartmentIT)
	srv.createTicket(t, "Ana", domain.DepartmentFinance)

	status, _ := srv.do(t, fiber.MethodGet, "/api/reports", "Bruno", nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, raw := srv.do(t, fiber.MethodGet, "/api/reports", "Admin TI", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	summary := decode[map[string]any](t, raw)
	assert.EqualValues(t, 2, summary["total"])
	assert.Len(t, summary["departamentos"], 2)
	problems := summary["problemas_frequentes"].([]any)
	require.Len(t, problems, 1)
	assert.EqualValues(t, 2, problems[0].(map[string]any)["ocorrencias"])

	status, _ = srv.do(t, fiber.MethodGet, "/api/reports?inicio=ontem", "Admin TI", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	req := httptest.NewRequest(fiber.MethodGet, "/api/reports/export", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+srv.tokens["Admin TI"])
	resp, err := srv.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, report.XLSXContentType, resp.Header.Get(fiber.HeaderContentType))
	disposition := resp.Header.Get(fiber.HeaderContentDisposition)
	assert.Regexp(t, `^attachment; filename="relatorio_chamados_\d{4}-\d{2}-\d{2}\.xlsx"$`, disposition)
	book, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(report.SheetDepartments)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Departamento", rows[0][0])

	req = httptest.NewRequest(fiber.MethodGet, "/api/reports/export?formato=csv", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+srv.tokens["Admin TI"])
	csvResp, err := srv.app.Test(req, -1)
	require.NoError(t, err)
	defer csvResp.Body.Close()
	require.Equal(t, fiber.StatusOK, csvResp.StatusCode)
	assert.Contains(t, csvResp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, csvResp.Header.Get(fiber.HeaderContentDisposition), ".csv")
	body, err := io.ReadAll(csvResp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "Departamento,"), string(body))

	status, _ = srv.do(t, fiber.MethodGet, "/api/reports/export?formato=pdf", "Admin TI", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestNavigation(t *testing.T) {
	srv := newTestServer(t)

	status, raw := srv.do(t, fiber.MethodGet, "/api/navigation?from=tickets-menu", "Ana", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	nav := decode[map[string]any](t, raw)
	assert.Equal(t, "tickets-menu", nav["atual"])
	assert.Equal(t, "main", nav["anterior"])
	assert.NotContains(t, nav["telas"], "reports")

	_, raw = srv.do(t, fiber.MethodGet, "/api/navigation?from=tickets-menu", "Admin TI", nil)
	assert.Contains(t, decode[map[string]any](t, raw)["telas"], "reports")

	_, raw = srv.do(t, fiber.MethodGet, "/api/navigation?from=tickets-menu&to=reports", "Ana", nil)
	assert.Equal(t, "tickets-menu", decode[map[string]any](t, raw)["atual"])

	status, _ = srv.do(t, fiber.MethodGet, "/api/navigation?from=nowhere", "Ana", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestUploadAndServe(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="files"; filename="tela.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/uploads", &body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+srv.tokens["Ana"])
	status, raw := srv.send(t, req)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	uploaded := decode[[]map[string]string](t, raw)
	require.Len(t, uploaded, 1)
	assert.Equal(t, "image", uploaded[0]["type"])
	require.True(t, strings.HasPrefix(uploaded[0]["url"], storage.URLPrefix))

	status, raw = srv.do(t, fiber.MethodGet, uploaded[0]["url"], "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "\x89PNG fake", string(raw))
}

func TestUploadRejectsDocuments(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("files", "planilha.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("not media"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/uploads", &body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+srv.tokens["Ana"])
	status, raw := srv.send(t, req)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", decode[errorBody](t, raw).Error.Code)
}

func TestUploadRejectsWholeBatchOnBadFile(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, file := range []struct{ name, contentType string }{
		{"tela.png", "image/png"},
		{"contrato.pdf", "application/pdf"},
	} {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+file.name+`"`)
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("conteudo"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/uploads", &body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+srv.tokens["Ana"])
	status, raw := srv.send(t, req)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "contrato.pdf", decode[errorBody](t, raw).Error.Details["arquivo"])

	entries, err := os.ReadDir(srv.uploads)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	status, _ := srv.do(t, fiber.MethodGet, "/health/live", "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, raw := srv.do(t, fiber.MethodGet, "/health/ready", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	ready := decode[map[string]any](t, raw)
	assert.Equal(t, map[string]any{"postgres": "disabled", "redis": "disabled"}, ready["dependencies"])

	srv.do(t, fiber.MethodGet, "/api/tickets", "", nil)
	status, raw = srv.do(t, fiber.MethodGet, "/health/metrics", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	snapshot := decode[observability.MetricsSnapshot](t, raw)
	assert.NotEmpty(t, snapshot.Requests)
	assert.NotEmpty(t, snapshot.Errors)
}
