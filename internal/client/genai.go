package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"direito-hub-backend/internal/config"
	apperrors "direito-hub-backend/internal/errors"

	"golang.org/x/oauth2/clientcredentials"
)

const genaiSource = "GenAI"

// GenAIClient talks to the generative-AI chat endpoint. Authentication is
// OAuth2 client-credentials; the token source lives inside the HTTP client.
type GenAIClient struct {
	creds      *config.GenAICredentials
	httpClient *http.Client
}

// NewGenAIClient creates a client from parsed credentials.
func NewGenAIClient(creds *config.GenAICredentials) *GenAIClient {
	cc := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     creds.OAuthURL,
	}
	hc := cc.Client(context.Background())
	hc.Timeout = 60 * time.Second

	return &GenAIClient{
		creds:      creds,
		httpClient: hc,
	}
}

// SetHTTPClient overrides the HTTP client (tests).
func (c *GenAIClient) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GerarTitulo produces a short human-readable headline for a norm from its
// ementa. Callers treat failures as best-effort and fall back to raw text.
func (c *GenAIClient) GerarTitulo(ctx context.Context, tipo, ementa string) (string, error) {
	prompt := fmt.Sprintf(
		"Escreva um título curto (máximo 12 palavras), claro e informativo para esta norma jurídica brasileira (%s). Responda apenas com o título.\n\nEmenta: %s",
		tipo, ementa,
	)
	return c.chat(ctx, prompt, 60)
}

// MelhorarConteudo rewrites study content for clarity, guided by tipo
// (e.g. "resumo", "flashcard", "questao") and optional free-text context.
func (c *GenAIClient) MelhorarConteudo(ctx context.Context, tipo, nome, conteudo, contexto string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Você é um professor de Direito brasileiro. Melhore o conteúdo a seguir (%s) sobre %q, mantendo precisão jurídica e linguagem didática.\n\n", tipo, nome)
	if contexto != "" {
		fmt.Fprintf(&b, "Contexto adicional: %s\n\n", contexto)
	}
	fmt.Fprintf(&b, "Conteúdo original:\n%s", conteudo)

	return c.chat(ctx, b.String(), 1024)
}

func (c *GenAIClient) chat(ctx context.Context, prompt string, maxTokens int) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:     c.creds.Model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal %s request: %w", genaiSource, err)
	}

	u := strings.TrimSuffix(c.creds.APIURL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("build %s request: %w", genaiSource, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamError(genaiSource, 0, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewUpstreamError(genaiSource, resp.StatusCode, err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.NewUpstreamError(genaiSource, resp.StatusCode, truncateBody(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", apperrors.NewParseError(genaiSource, err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", apperrors.NewUpstreamError(genaiSource, resp.StatusCode, "empty completion")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
