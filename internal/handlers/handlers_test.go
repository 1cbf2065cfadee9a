package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/smartcare/smartcare-api/internal/config"
	"github.com/smartcare/smartcare-api/internal/models"
	"github.com/smartcare/smartcare-api/internal/services"
	"github.com/smartcare/smartcare-api/internal/store"
	"github.com/smartcare/smartcare-api/internal/utils"
)

type sentMail struct {
	recipients []string
	template   services.EmailTemplate
	data       services.EmailData
}

// fakeMailer records every send and returns a configurable error.
type fakeMailer struct {
	err   error
	sends []sentMail
}

func (f *fakeMailer) Send(ctx context.Context, recipients []string, template services.EmailTemplate, data services.EmailData) error {
	f.sends = append(f.sends, sentMail{recipients: recipients, template: template, data: data})
	return f.err
}

func newTestRouter(t *testing.T, mailer services.Mailer) (*gin.Engine, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mem := store.NewMemory()
	h := NewHandler(mem, mailer, &config.Config{}, zerolog.Nop())
	r := gin.New()
	RegisterRoutes(r, h)
	return r, mem
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &body)
	return body.Error
}

// seedUser inserts a user directly into the store with a real bcrypt hash.
func seedUser(t *testing.T, mem *store.Memory, name, email, password string) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.User{Name: name, Email: email, Password: hashed}
	if err := mem.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func authToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	return token
}

func seedProvider(t *testing.T, mem *store.Memory, p models.Provider) *models.Provider {
	t.Helper()
	if err := mem.CreateProvider(context.Background(), &p); err != nil {
		t.Fatalf("seed provider: %v", err)
	}
	return &p
}
