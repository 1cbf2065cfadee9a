package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGenerateCareTipsRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t, &fakeMailer{})
	w := doJSON(t, r, http.MethodPost, "/api/ai/gemini-care-tips/", gin.H{
		"provider_name": "Dr. Rao",
		"specialty":     "Cardiology",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestGenerateCareTipsValidation(t *testing.T) {
	r, mem := newTestRouter(t, &fakeMailer{})
	u := seedUser(t, mem, "Asha", "asha@example.com", "longenough")

	// specialty missing
	w := doJSON(t, r, http.MethodPost, "/api/ai/gemini-care-tips/", gin.H{
		"provider_name": "Dr. Rao",
	}, authToken(t, u.ID))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateCareTipsUnconfigured(t *testing.T) {
	// The test config carries no Gemini key, so the handler fails before any
	// outbound request is made.
	r, mem := newTestRouter(t, &fakeMailer{})
	u := seedUser(t, mem, "Asha", "asha@example.com", "longenough")

	w := doJSON(t, r, http.MethodPost, "/api/ai/gemini-care-tips/", gin.H{
		"provider_name": "Dr. Rao",
		"specialty":     "Cardiology",
		"reason":        "chest pain",
	}, authToken(t, u.ID))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Failed to generate care tips" {
		t.Errorf("error = %q", msg)
	}
}
