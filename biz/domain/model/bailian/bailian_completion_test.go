package bailian

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xh-polaris/health-triage/biz/application/dto"
	"github.com/xh-polaris/health-triage/biz/infrastructure/consts"
)

func TestBLCompletionApp_Call(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"summary\":\"ok\"}"}}]}`))
	}))
	defer srv.Close()

	app := NewBLCompletionApp("sk-test", srv.URL)
	defer func() { _ = app.Close() }()

	text, err := app.Call(&dto.Prompt{Instructions: "rules", Content: "task"})
	if err != nil {
		t.Fatal(err)
	}
	if text != `{"summary":"ok"}` {
		t.Fatalf("unexpected text: %s", text)
	}

	// 请求必须带固定模型标识与结构化输出提示
	if got["model"] != Model {
		t.Fatalf("model mismatch: %v", got["model"])
	}
	rf, _ := got["response_format"].(map[string]any)
	if rf["type"] != "json_object" {
		t.Fatalf("structured-output hint missing: %v", got["response_format"])
	}
	msgs, _ := got["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expect system+user messages, got %v", got["messages"])
	}
	first, _ := msgs[0].(map[string]any)
	if first["role"] != "system" || first["content"] != "rules" {
		t.Fatalf("system message mismatch: %v", first)
	}
}

func TestBLCompletionApp_CallUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	app := NewBLCompletionApp("sk-test", srv.URL)
	_, err := app.Call(&dto.Prompt{Instructions: "rules", Content: "task"})

	var en *consts.Errno
	if !errors.As(err, &en) || en.HTTPStatus() != 502 {
		t.Fatalf("non-2xx should map to 502, got %v", err)
	}
	// 原始错误信息只进日志, 不进对外信息
	if en.Public() != consts.ErrUpstream.Public() {
		t.Fatalf("caller-visible message must stay generic, got %q", en.Public())
	}
}

func TestBLCompletionApp_CallEmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	app := NewBLCompletionApp("sk-test", srv.URL)
	_, err := app.Call(&dto.Prompt{Instructions: "rules", Content: "task"})

	var en *consts.Errno
	if !errors.As(err, &en) || en.HTTPStatus() != 502 {
		t.Fatalf("empty completion should map to 502, got %v", err)
	}
}

func TestBLCompletionApp_CallMissingCredential(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	app := NewBLCompletionApp("", srv.URL)
	_, err := app.Call(&dto.Prompt{Instructions: "rules", Content: "task"})

	var en *consts.Errno
	if !errors.As(err, &en) || en.HTTPStatus() != 500 {
		t.Fatalf("missing credential should map to 500, got %v", err)
	}
	if calls != 0 {
		t.Fatal("credential is checked before any network call")
	}
}
