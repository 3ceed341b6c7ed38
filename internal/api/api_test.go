package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/andib0/onyx/internal/auth"
	"github.com/andib0/onyx/internal/config"
	"github.com/andib0/onyx/internal/db"
	"github.com/andib0/onyx/pkg/audit"
)

type testServer struct {
	*httptest.Server
	db *db.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithConfig(t, config.DefaultConfig())
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	auditLog := audit.NewSQLiteLogger(database.DB)
	if err := auditLog.Init(); err != nil {
		t.Fatalf("initializing audit log: %v", err)
	}
	t.Cleanup(func() { auditLog.Close() })

	a := New(database, auth.New("test-secret", "test-refresh-secret", 15, 7), auditLog, cfg)
	mux := http.NewServeMux()
	a.RegisterRoutes(mux)

	srv := httptest.NewServer(SecurityHeaders(mux))
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, db: database}
}

type apiResponse struct {
	Status  int
	Success bool
	Data    json.RawMessage
	Error   string
	Message string
}

// request performs a JSON round trip against the test server. An empty token
// sends no Authorization header.
func (ts *testServer) request(t *testing.T, method, path, token string, body any) *apiResponse {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		buf = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, ts.URL+path, buf)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decoding envelope: %v", method, path, err)
	}
	return &apiResponse{
		Status:  resp.StatusCode,
		Success: env.Success,
		Data:    env.Data,
		Error:   env.Error,
		Message: env.Message,
	}
}

func (r *apiResponse) decode(t *testing.T, dst any) {
	t.Helper()
	if err := json.Unmarshal(r.Data, dst); err != nil {
		t.Fatalf("decoding response data: %v", err)
	}
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// registerUser creates an account through the API and returns its tokens.
func (ts *testServer) registerUser(t *testing.T, email string) *tokenPair {
	t.Helper()
	resp := ts.request(t, "POST", "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "correct horse battery",
	})
	if resp.Status != http.StatusCreated {
		t.Fatalf("register %s: status %d (%s)", email, resp.Status, resp.Error)
	}
	var pair tokenPair
	resp.decode(t, &pair)
	return &pair
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.request(t, "GET", "/api/health", "", nil)
	if resp.Status != http.StatusOK || !resp.Success {
		t.Fatalf("health: status %d success %v", resp.Status, resp.Success)
	}
}

func TestSecurityHeaders(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := resp.Header.Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{"/api/schedule", "/api/supplements", "/api/meals", "/api/logs", "/api/sync/export"} {
		resp := ts.request(t, "GET", path, "", nil)
		if resp.Status != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status %d, want 401", path, resp.Status)
		}
		if resp.Success {
			t.Errorf("GET %s without token: success should be false", path)
		}
	}

	// Garbage tokens are treated the same as no token.
	resp := ts.request(t, "GET", "/api/schedule", "not-a-jwt", nil)
	if resp.Status != http.StatusUnauthorized {
		t.Errorf("garbage token: status %d, want 401", resp.Status)
	}
}

func TestScheduleCRUDOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	user := ts.registerUser(t, "crud@example.com")

	resp := ts.request(t, "POST", "/api/schedule", user.AccessToken, map[string]any{
		"start": "06:00", "end": "07:00", "title": "Morning walk", "tag": "health",
	})
	if resp.Status != http.StatusCreated {
		t.Fatalf("create block: status %d (%s)", resp.Status, resp.Error)
	}
	var block db.ScheduleBlock
	resp.decode(t, &block)
	if block.ID == "" || block.Source != "schedule" {
		t.Errorf("created block = %+v", block)
	}

	// Missing required fields.
	resp = ts.request(t, "POST", "/api/schedule", user.AccessToken, map[string]any{
		"start": "06:00",
	})
	if resp.Status != http.StatusBadRequest {
		t.Errorf("create without title: status %d, want 400", resp.Status)
	}

	resp = ts.request(t, "PUT", "/api/schedule/"+block.ID, user.AccessToken, map[string]any{
		"title": "Evening walk",
	})
	if resp.Status != http.StatusOK {
		t.Fatalf("update block: status %d (%s)", resp.Status, resp.Error)
	}
	resp.decode(t, &block)
	if block.Title != "Evening walk" {
		t.Errorf("patched title = %q", block.Title)
	}

	resp = ts.request(t, "GET", "/api/schedule", user.AccessToken, nil)
	var blocks []*db.ScheduleBlock
	resp.decode(t, &blocks)
	if len(blocks) != 1 {
		t.Fatalf("list returned %d blocks", len(blocks))
	}

	resp = ts.request(t, "DELETE", "/api/schedule/"+block.ID, user.AccessToken, nil)
	if resp.Status != http.StatusOK || resp.Message != "deleted" {
		t.Errorf("delete: status %d message %q", resp.Status, resp.Message)
	}
	resp = ts.request(t, "DELETE", "/api/schedule/"+block.ID, user.AccessToken, nil)
	if resp.Status != http.StatusNotFound {
		t.Errorf("double delete: status %d, want 404", resp.Status)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.registerUser(t, "alice@example.com")
	bob := ts.registerUser(t, "bob@example.com")

	resp := ts.request(t, "POST", "/api/schedule", alice.AccessToken, map[string]any{
		"start": "06:00", "end": "07:00", "title": "Alice's block",
	})
	var block db.ScheduleBlock
	resp.decode(t, &block)

	resp = ts.request(t, "PUT", "/api/schedule/"+block.ID, bob.AccessToken, map[string]any{
		"title": "Hijacked",
	})
	if resp.Status != http.StatusNotFound {
		t.Errorf("bob updating alice's block: status %d, want 404", resp.Status)
	}
	resp = ts.request(t, "DELETE", "/api/schedule/"+block.ID, bob.AccessToken, nil)
	if resp.Status != http.StatusNotFound {
		t.Errorf("bob deleting alice's block: status %d, want 404", resp.Status)
	}

	resp = ts.request(t, "GET", "/api/schedule", bob.AccessToken, nil)
	var blocks []*db.ScheduleBlock
	resp.decode(t, &blocks)
	if len(blocks) != 0 {
		t.Errorf("bob sees %d of alice's blocks", len(blocks))
	}
}

func TestRateLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Limits.RateLimit = 3
	cfg.Limits.RateWindowSec = 60
	ts := newTestServerWithConfig(t, cfg)

	last := 0
	for i := 0; i < 5; i++ {
		resp := ts.request(t, "POST", "/api/auth/login", "", map[string]any{
			"email": "nobody@example.com", "password": "whatever",
		})
		last = resp.Status
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("5th login attempt: status %d, want 429", last)
	}

	// Unlimited routes are unaffected.
	resp := ts.request(t, "GET", "/api/health", "", nil)
	if resp.Status != http.StatusOK {
		t.Errorf("health during rate limit: status %d", resp.Status)
	}
}
