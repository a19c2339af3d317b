// Package service 实现外部服务客户端，当前只有解释生成的 LLM 后端。
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rushteam/prodrec/core"
)

// LLMClient 是 OpenAI 兼容 chat-completions 端点的客户端实现。
//
// REST API 格式：
//   - 推理端点：POST {Endpoint}/chat/completions
//   - 请求体：{"model": ..., "messages": [...], "max_tokens": ..., "temperature": ...}
//   - 响应：choices[0].message.content
//
// 本客户端只负责调用与解析；超时与回退策略由 explain.Generator 统一处理，
// 这里的任何失败都以 error 形式抛给上层。
type LLMClient struct {
	// Endpoint 服务端点，例如 "https://api.openai.com/v1"。
	Endpoint string

	// APIKey Bearer 认证密钥（可选，取决于部署）。
	APIKey string

	// Model 模型名称。
	Model string

	// Timeout HTTP 超时时间。
	Timeout time.Duration

	// MaxTokens 生成上限；<=0 时默认 150。
	MaxTokens int

	// Temperature 采样温度。
	Temperature float64

	httpClient *http.Client
}

// LLMOption LLM 客户端配置选项。
type LLMOption func(*LLMClient)

// WithAPIKey 设置认证密钥。
func WithAPIKey(key string) LLMOption {
	return func(c *LLMClient) { c.APIKey = key }
}

// WithModel 设置模型名称。
func WithModel(model string) LLMOption {
	return func(c *LLMClient) { c.Model = model }
}

// WithTimeout 设置超时时间。
func WithTimeout(timeout time.Duration) LLMOption {
	return func(c *LLMClient) { c.Timeout = timeout }
}

// WithHTTPClient 注入自定义 HTTP 客户端（测试用）。
func WithHTTPClient(client *http.Client) LLMOption {
	return func(c *LLMClient) { c.httpClient = client }
}

// NewLLMClient 创建一个新的 LLM 客户端。
func NewLLMClient(endpoint string, opts ...LLMOption) *LLMClient {
	client := &LLMClient{
		Endpoint:    strings.TrimRight(endpoint, "/"),
		Model:       "gpt-3.5-turbo",
		Timeout:     30 * time.Second,
		MaxTokens:   150,
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: client.Timeout}
	}
	return client
}

var _ core.ExplainService = (*LLMClient)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate 调用 chat-completions 生成解释文本。
func (c *LLMClient) Generate(ctx context.Context, req *core.ExplainRequest) (string, error) {
	if c.Endpoint == "" {
		return "", core.ErrExplainUnavailable
	}

	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 150
	}
	body, err := json.Marshal(&chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful e-commerce recommendation assistant."},
			{Role: "user", Content: buildPrompt(req)},
		},
		MaxTokens:   maxTokens,
		Temperature: c.Temperature,
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("llm: unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm: empty choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// Close 实现 core.ExplainService；HTTP 客户端无持久连接需要显式关闭。
func (c *LLMClient) Close(_ context.Context) error {
	return nil
}

// buildPrompt 把商品事实与行为摘要拼成提示词。
func buildPrompt(req *core.ExplainRequest) string {
	var b strings.Builder
	b.WriteString("You are a helpful e-commerce assistant. Explain why we're recommending this product to the user in a friendly, concise way (2-3 sentences max).\n\n")
	fmt.Fprintf(&b, "Product Details:\n- Name: %s\n- Category: %s\n- Description: %s\n\n", req.Product.Name, req.Product.Category, req.Product.Description)
	b.WriteString("User Behavior:\n")
	b.WriteString(behaviorContext(req.Summary))
	fmt.Fprintf(&b, "\n\nRecommendation Method: %s\n\n", req.Reason)
	b.WriteString("Generate a personalized explanation for why this product is recommended to this user. Make it engaging and highlight the connection to their interests.")
	return b.String()
}

// behaviorContext 把行为摘要转成可读的上下文片段。
func behaviorContext(summary *core.BehaviorSummary) string {
	if summary == nil || summary.TotalInteractions == 0 {
		return "- New user with limited history"
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("- Total interactions: %d", summary.TotalInteractions))
	if len(summary.TopCategories) > 0 {
		parts = append(parts, "- Favorite categories: "+strings.Join(summary.TopCategories, ", "))
	}
	if len(summary.RecentProducts) > 0 {
		recent := summary.RecentProducts
		if len(recent) > 3 {
			recent = recent[:3]
		}
		parts = append(parts, "- Recently viewed: "+strings.Join(recent, ", "))
	}
	if len(summary.TypeCounts) > 0 {
		types := make([]string, 0, len(summary.TypeCounts))
		for _, t := range []core.InteractionType{
			core.InteractionView, core.InteractionClick, core.InteractionCart,
			core.InteractionWishlist, core.InteractionPurchase,
		} {
			if n, ok := summary.TypeCounts[t]; ok {
				types = append(types, fmt.Sprintf("%s(%d)", t, n))
			}
		}
		parts = append(parts, "- Interaction types: "+strings.Join(types, ", "))
	}
	return strings.Join(parts, "\n")
}
