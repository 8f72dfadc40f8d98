package gemini

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/video-brief/internal/config"
	"github.com/nguyentantai21042004/video-brief/internal/logger"
)

type fakeGenerator struct {
	reply    *genai.GenerateContentResponse
	err      error
	calls    int
	contents []*genai.Content
	model    string
	// onCall runs inside GenerateContent, e.g. to mimic a concurrent request.
	onCall func()
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.contents = contents
	if f.onCall != nil {
		f.onCall()
	}
	return f.reply, f.err
}

func textReply(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: genai.RoleModel}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func TestGenerateText(t *testing.T) {
	gen := &fakeGenerator{reply: textReply("Hello, ", "world")}
	c := newWithGenerators("gemini-2.5-flash", []contentGenerator{gen}, logger.Nop())

	got, err := c.GenerateText(context.Background(), "say hi")
	if err != nil {
		t.Fatalf("GenerateText() error = %v", err)
	}
	if got != "Hello, world" {
		t.Errorf("GenerateText() = %q, want %q", got, "Hello, world")
	}
	if gen.model != "gemini-2.5-flash" {
		t.Errorf("model = %q", gen.model)
	}
	if len(gen.contents) != 1 || gen.contents[0].Parts[0].Text != "say hi" {
		t.Errorf("contents = %+v", gen.contents)
	}
}

func TestGenerateFromMedia(t *testing.T) {
	gen := &fakeGenerator{reply: textReply("spoken words")}
	c := newWithGenerators("m", []contentGenerator{gen}, logger.Nop())

	got, err := c.GenerateFromMedia(context.Background(), "Please transcribe this audio into text:", []byte("ID3"), "audio/mp3")
	if err != nil {
		t.Fatalf("GenerateFromMedia() error = %v", err)
	}
	if got != "spoken words" {
		t.Errorf("GenerateFromMedia() = %q", got)
	}

	parts := gen.contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("parts = %d, want 2", len(parts))
	}
	if parts[0].Text != "Please transcribe this audio into text:" {
		t.Errorf("first part = %q", parts[0].Text)
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MIMEType != "audio/mp3" || string(parts[1].InlineData.Data) != "ID3" {
		t.Errorf("media part = %+v", parts[1].InlineData)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	tests := []struct {
		name  string
		reply *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"empty text", textReply("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newWithGenerators("m", []contentGenerator{&fakeGenerator{reply: tt.reply}}, logger.Nop())
			if _, err := c.GenerateText(context.Background(), "x"); !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("error = %v, want ErrEmptyResponse", err)
			}
		})
	}
}

func TestGenerateRotatesOnQuota(t *testing.T) {
	limited := &fakeGenerator{err: errors.New("Error 429, Message: quota exceeded, Status: RESOURCE_EXHAUSTED")}
	healthy := &fakeGenerator{reply: textReply("ok")}
	c := newWithGenerators("m", []contentGenerator{limited, healthy}, logger.Nop())

	got, err := c.GenerateText(context.Background(), "x")
	if err != nil {
		t.Fatalf("GenerateText() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("GenerateText() = %q", got)
	}

	// The healthy key stays current for the next request.
	if _, err := c.GenerateText(context.Background(), "y"); err != nil {
		t.Fatal(err)
	}
	if limited.calls != 1 || healthy.calls != 2 {
		t.Errorf("calls limited=%d healthy=%d, want 1 and 2", limited.calls, healthy.calls)
	}
}

func TestGenerateAllKeysExhausted(t *testing.T) {
	a := &fakeGenerator{err: errors.New("429 Too Many Requests")}
	b := &fakeGenerator{err: errors.New("quota exceeded")}
	c := newWithGenerators("m", []contentGenerator{a, b}, logger.Nop())

	_, err := c.GenerateText(context.Background(), "x")
	if err == nil {
		t.Fatal("GenerateText() should fail when every key is limited")
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("each key should be tried once, got a=%d b=%d", a.calls, b.calls)
	}
}

func TestGenerateTriesEachKeyOnceUnderConcurrentRotation(t *testing.T) {
	quota := errors.New("429 RESOURCE_EXHAUSTED")
	a := &fakeGenerator{err: quota}
	b := &fakeGenerator{err: quota}
	d := &fakeGenerator{err: quota}
	c := newWithGenerators("m", []contentGenerator{a, b, d}, logger.Nop())

	// While key 1 is in flight, other requests rotate the cursor to key 3.
	a.onCall = func() {
		c.mu.Lock()
		c.currentKey = 2
		c.mu.Unlock()
	}

	if _, err := c.GenerateText(context.Background(), "x"); err == nil {
		t.Fatal("GenerateText() should fail when every key is limited")
	}
	if a.calls != 1 || b.calls != 1 || d.calls != 1 {
		t.Errorf("calls = (%d, %d, %d), want each key exactly once", a.calls, b.calls, d.calls)
	}
}

func TestGenerateNonQuotaErrorNotRotated(t *testing.T) {
	a := &fakeGenerator{err: errors.New("400 INVALID_ARGUMENT: request too large")}
	b := &fakeGenerator{reply: textReply("unused")}
	c := newWithGenerators("m", []contentGenerator{a, b}, logger.Nop())

	if _, err := c.GenerateText(context.Background(), "x"); err == nil {
		t.Fatal("GenerateText() should surface the rejection")
	}
	if b.calls != 0 {
		t.Errorf("second key called %d times, want 0", b.calls)
	}
}

func TestNewRequiresKeys(t *testing.T) {
	if _, err := New(context.Background(), config.GeminiConfig{Model: "m"}, logger.Nop()); err == nil {
		t.Error("New() should fail without API keys")
	}
}
