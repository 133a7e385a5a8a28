package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloasmak/vyra/internal/config"
	"github.com/helloasmak/vyra/internal/domain"
	store "github.com/helloasmak/vyra/internal/repository"
	"github.com/helloasmak/vyra/internal/service"
	"github.com/helloasmak/vyra/internal/session"
	"github.com/helloasmak/vyra/tests/helpers"
)

type echoConcierge struct{}

func (echoConcierge) GetResponse(ctx context.Context, prompt string) string {
	return "Concierge: " + prompt
}

func newTestHandler(t *testing.T) (*Handler, store.Store) {
	t.Helper()
	db := helpers.NewTestSQLiteStore(t)
	catalog := helpers.NewTestCatalog(t)
	policyEngine := helpers.NewTestPolicyEngine(t)
	cfg := &config.Config{ChatMaxMessageLength: 100, SessionSweepInterval: time.Minute}
	svc := service.New(db, echoConcierge{}, session.NewStore(time.Minute), catalog, cfg, policyEngine)
	return NewHandler(svc), db
}

func doRequest(t *testing.T, handler echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) > 0 {
		names := make([]string, 0, len(params)/2)
		values := make([]string, 0, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.Health, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthUnavailableWhenDatabaseClosed(t *testing.T) {
	h, db := newTestHandler(t)
	require.NoError(t, db.Close())

	rec := doRequest(t, h.Health, http.MethodGet, "/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRegisterRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()
	h.RegisterRoutes(e)

	want := map[string]bool{
		"GET /v1/services":                            false,
		"GET /v1/services/:service_id":                false,
		"GET /v1/faqs":                                false,
		"GET /v1/partners":                            false,
		"GET /v1/careers":                             false,
		"GET /v1/support":                             false,
		"GET /v1/legal/:kind":                         false,
		"POST /v1/chat/sessions":                      false,
		"GET /v1/chat/sessions/:session_id/messages":  false,
		"POST /v1/chat/sessions/:session_id/messages": false,
		"POST /v1/concierge":                          false,
		"POST /v1/inquiries/booking":                  false,
		"POST /v1/inquiries/partnership":              false,
		"GET /health":                                 false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		if !found {
			t.Errorf("route %s not registered", route)
		}
	}
}

func TestListServices(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.ListServices, http.MethodGet, "/v1/services", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Services []domain.Service `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 6)
	assert.Equal(t, "airport", resp.Services[0].ID)
}

func TestGetService(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.GetService, http.MethodGet, "/v1/services/golf", "", "service_id", "golf")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var svc domain.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &svc))
	assert.Equal(t, "Golf Transfers", svc.Title)

	rec = doRequest(t, h.GetService, http.MethodGet, "/v1/services/helicopter", "", "service_id", "helicopter")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestReferenceContent(t *testing.T) {
	h, _ := newTestHandler(t)

	cases := []struct {
		name    string
		handler echo.HandlerFunc
		target  string
		key     string
	}{
		{"faqs", h.ListFAQs, "/v1/faqs", "faqs"},
		{"partners", h.GetPartners, "/v1/partners", "partners"},
		{"steps", h.GetPartners, "/v1/partners", "steps"},
		{"careers", h.ListCareers, "/v1/careers", "careers"},
		{"support", h.ListSupportChannels, "/v1/support", "channels"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, tc.handler, http.MethodGet, tc.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var resp map[string][]json.RawMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp[tc.key])
		})
	}
}

func TestGetLegal(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, kind := range []string{"privacy", "terms", "cookies"} {
		rec := doRequest(t, h.GetLegal, http.MethodGet, "/v1/legal/"+kind, "", "kind", kind)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", kind, rec.Code)
		}
		var doc domain.LegalDocument
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, domain.LegalKind(kind), doc.Kind)
	}

	rec := doRequest(t, h.GetLegal, http.MethodGet, "/v1/legal/refunds", "", "kind", "refunds")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestChatConversation(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.CreateChatSession, http.MethodPost, "/v1/chat/sessions", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var created struct {
		SessionID string               `json:"session_id"`
		Messages  []domain.ChatMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.True(t, strings.HasPrefix(created.SessionID, "sess_"))
	require.Len(t, created.Messages, 1)
	assert.Equal(t, domain.WelcomeMessage, created.Messages[0].Text)

	rec = doRequest(t, h.SendChatMessage, http.MethodPost, "/v1/chat/sessions/"+created.SessionID+"/messages",
		`{"text":"Can you book a desert tour?"}`, "session_id", created.SessionID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var sent struct {
		Reply    domain.ChatMessage   `json:"reply"`
		Messages []domain.ChatMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sent))
	assert.Equal(t, domain.RoleAssistant, sent.Reply.Role)
	assert.Equal(t, "Concierge: Can you book a desert tour?", sent.Reply.Text)
	require.Len(t, sent.Messages, 3)
	assert.Equal(t, domain.RoleUser, sent.Messages[1].Role)

	rec = doRequest(t, h.GetChatMessages, http.MethodGet, "/v1/chat/sessions/"+created.SessionID+"/messages", "",
		"session_id", created.SessionID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var history struct {
		Messages []domain.ChatMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Equal(t, sent.Messages, history.Messages)
}

func TestSendChatMessageErrors(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.SendChatMessage, http.MethodPost, "/v1/chat/sessions/sess_missing/messages",
		`{"text":"Hello"}`, "session_id", "sess_missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown session: expected 404, got %d", rec.Code)
	}

	rec = doRequest(t, h.CreateChatSession, http.MethodPost, "/v1/chat/sessions", "")
	var created struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	cases := []struct {
		name string
		body string
	}{
		{"blank", `{"text":"   "}`},
		{"too long", `{"text":"` + strings.Repeat("a", 101) + `"}`},
		{"malformed", `{"text":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, h.SendChatMessage, http.MethodPost, "/v1/chat/sessions/"+created.SessionID+"/messages",
				tc.body, "session_id", created.SessionID)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}

	rec = doRequest(t, h.GetChatMessages, http.MethodGet, "/v1/chat/sessions/"+created.SessionID+"/messages", "",
		"session_id", created.SessionID)
	var history struct {
		Messages []domain.ChatMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Len(t, history.Messages, 1, "rejected messages must not reach the transcript")
}

func TestGetChatMessagesUnknownSession(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.GetChatMessages, http.MethodGet, "/v1/chat/sessions/sess_missing/messages", "",
		"session_id", "sess_missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAsk(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.Ask, http.MethodPost, "/v1/concierge", `{"text":"Golf in Marrakech?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Concierge: Golf in Marrakech?", resp["reply"])

	rec = doRequest(t, h.Ask, http.MethodPost, "/v1/concierge", `{"text":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmitBooking(t *testing.T) {
	h, db := newTestHandler(t)

	body := `{"full_name":"Amina Benali","email":"amina@example.com","service_type":"Golf Transfers","requested_date":"2026-11-02"}`
	rec := doRequest(t, h.SubmitBooking, http.MethodPost, "/v1/inquiries/booking", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var ack domain.Acknowledgement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	require.True(t, strings.HasPrefix(ack.ID, "bk_"))

	got, err := db.GetBooking(context.Background(), ack.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Amina Benali", got.FullName)
}

func TestSubmitBookingValidation(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"full_name":"","email":"not-an-email","service_type":"Helicopter"}`
	rec := doRequest(t, h.SubmitBooking, http.MethodPost, "/v1/inquiries/booking", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	fields := make([]string, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"full_name", "email", "service_type"}, fields)
}

func TestSubmitPartnership(t *testing.T) {
	h, db := newTestHandler(t)

	body := `{"agency_name":"Atlas DMC","legal_representative":"Youssef Idrissi","business_email":"partners@atlas.example","partnership_type":"Luxury DMC"}`
	rec := doRequest(t, h.SubmitPartnership, http.MethodPost, "/v1/inquiries/partnership", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var ack domain.Acknowledgement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))

	got, err := db.GetPartnership(context.Background(), ack.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Luxury DMC", got.PartnershipType)

	rec = doRequest(t, h.SubmitPartnership, http.MethodPost, "/v1/inquiries/partnership",
		`{"agency_name":"Atlas DMC","legal_representative":"Y","business_email":"partners@atlas.example","partnership_type":"Airline"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
