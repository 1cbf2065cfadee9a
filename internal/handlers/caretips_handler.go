package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type CareTipsRequest struct {
	ProviderName string `json:"provider_name" binding:"required"`
	Specialty    string `json:"specialty" binding:"required"`
	Reason       string `json:"reason"`
	Question     string `json:"question"` // full prompt override
}

type geminiRequestPart struct {
	Text string `json:"text"`
}

type geminiRequestContent struct {
	Parts []geminiRequestPart `json:"parts"`
}

type geminiRequestBody struct {
	Contents []geminiRequestContent `json:"contents"`
}

type geminiResponsePart struct {
	Text string `json:"text"`
}

type geminiResponseCandidate struct {
	Content struct {
		Parts []geminiResponsePart `json:"parts"`
		Role  string               `json:"role"`
	} `json:"content"`
}

type geminiResponseBody struct {
	Candidates []geminiResponseCandidate `json:"candidates"`
}

// GenerateCareTips proxies a care-navigation prompt to the Gemini API and
// returns the generated text.
func (h *Handler) GenerateCareTips(c *gin.Context) {
	var req CareTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.Config.GeminiAPIKey == "" {
		h.Logger.Error().Msg("care tips: GEMINI_API_KEY is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate care tips"})
		return
	}

	prompt := req.Question
	if prompt == "" {
		prompt = fmt.Sprintf(
			"Care Navigation Tips for patient:\nProvider: %s\nSpecialty: %s\nReason: %s\n"+
				"Explain why this provider is recommended and what to expect during the visit. "+
				"Give clear, friendly, and actionable tips for the patient.",
			req.ProviderName, req.Specialty, req.Reason,
		)
	}

	body, err := json.Marshal(geminiRequestBody{
		Contents: []geminiRequestContent{{Parts: []geminiRequestPart{{Text: prompt}}}},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request body"})
		return
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", h.Config.GeminiModel)
	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create HTTP request"})
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-goog-api-key", h.Config.GeminiAPIKey)

	client := &http.Client{Timeout: 30 * time.Second}
	httpResp, err := client.Do(httpReq)
	if err != nil {
		h.Logger.Error().Err(err).Msg("care tips: request to Gemini failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate care tips"})
		return
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read AI response"})
		return
	}
	if httpResp.StatusCode != http.StatusOK {
		h.Logger.Error().Int("status", httpResp.StatusCode).Str("body", string(respBody)).Msg("care tips: Gemini returned an error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate care tips"})
		return
	}

	var geminiResp geminiResponseBody
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse AI response"})
		return
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		c.JSON(http.StatusOK, gin.H{"tips": geminiResp.Candidates[0].Content.Parts[0].Text})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "AI returned an empty or invalid response"})
}
