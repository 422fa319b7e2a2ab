package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	delay      time.Duration
	response   *Response
	callCount  int
	lastReq    *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func helloRequest() *Request {
	return &Request{Messages: []Message{UserMessage("Hello")}}
}

func textResponse(provider, text string) *Response {
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: text}}},
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: textResponse("primary", `{"ok":true}`)}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary}, &Config{Timeout: time.Second}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if resp.Text() != `{"ok":true}` {
		t.Errorf("Unexpected text: %s", resp.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackOrRetry(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: textResponse("secondary", "hi")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err == nil {
		t.Fatal("Expected error from primary provider, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) || provErr.Provider != "primary" {
		t.Errorf("Expected ProviderError for primary, got: %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected exactly one attempt, got: %d", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("Secondary provider must not be called, got: %d", secondary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_Timeout(t *testing.T) {
	slow := &mockProvider{name: "slow", model: "slow-model", delay: time.Second, response: textResponse("slow", "late")}
	manager := NewManager([]Provider{slow}, &Config{Timeout: 20 * time.Millisecond}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrProviderTimeout) {
		t.Fatalf("Expected ErrProviderTimeout, got: %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("Timeout was not enforced")
	}
}

func TestGenerateContent_EmptyResponse(t *testing.T) {
	empty := &mockProvider{name: "empty", model: "m", response: textResponse("empty", "")}
	manager := NewManager([]Provider{empty}, nil, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("Expected ErrEmptyResponse, got: %v", err)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
	if manager.Primary() != nil {
		t.Errorf("Expected nil primary provider")
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	p := &mockProvider{name: "p", model: "m", response: textResponse("p", "x")}
	manager := NewManager([]Provider{p}, &Config{}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
	if p.callCount != 0 {
		t.Errorf("Provider must not be called for an invalid request")
	}
}

func TestResponseText(t *testing.T) {
	var nilResp *Response
	if nilResp.Text() != "" {
		t.Errorf("Expected empty text for nil response")
	}

	resp := &Response{Content: Message{Parts: []Part{{Text: `{"a":`}, {Text: `1}`}}}}
	if resp.Text() != `{"a":1}` {
		t.Errorf("Unexpected joined text: %s", resp.Text())
	}
}
