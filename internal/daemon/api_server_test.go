package daemon

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"tubelang/internal/api"
	"tubelang/internal/config"
	"tubelang/internal/language"
	"tubelang/internal/testsupport"
)

func newTestHandler(t *testing.T, opts ...testsupport.ConfigOption) http.Handler {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	return newTestDaemon(t, cfg).api.handler()
}

func newTestDaemon(t *testing.T, cfg *config.Config) *Daemon {
	t.Helper()
	st := testsupport.MustOpenStore(t, cfg)
	d, err := New(cfg, st, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func serve(h http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHandleClassify(t *testing.T) {
	h := newTestHandler(t)
	w := serve(h, http.MethodPost, "/api/classify",
		`{"titles":["Los mejores momentos del partido de esta temporada","Vlog 2024"],"explain":true}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeBody[api.ClassifyResponse](t, w)
	if len(resp.Results) != 2 || resp.Results[0].Verdict != language.Spanish || resp.Results[1].Verdict != language.Unknown {
		t.Fatalf("unexpected results %+v", resp.Results)
	}
	if resp.Results[1].Rule == "" {
		t.Fatal("expected rule with explain")
	}
}

func TestHandleClassifyRejectsBadInput(t *testing.T) {
	h := newTestHandler(t)
	if w := serve(h, http.MethodGet, "/api/classify", "", nil); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET classify = %d", w.Code)
	}
	w := serve(h, http.MethodPost, "/api/classify", `{"titles":`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body = %d", w.Code)
	}
	if resp := decodeBody[api.ErrorResponse](t, w); resp.Error == "" {
		t.Fatal("expected error message")
	}
}

func TestHandleSettingsRoundTrip(t *testing.T) {
	h := newTestHandler(t)

	w := serve(h, http.MethodPut, "/api/settings", `{"selectedLanguages":["fr","Spanish"],"showUnknown":false}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("PUT settings = %d: %s", w.Code, w.Body.String())
	}
	put := decodeBody[api.SettingsResponse](t, w)
	if got := put.Settings.SelectedLanguages; len(got) != 2 || got[0] != language.French || got[1] != language.Spanish {
		t.Fatalf("selected = %v", got)
	}

	get := decodeBody[api.SettingsResponse](t, serve(h, http.MethodGet, "/api/settings", "", nil))
	if get.SelectedLanguage != language.French || get.Settings.ShowUnknown {
		t.Fatalf("GET settings = %+v", get)
	}

	reset := decodeBody[api.SettingsResponse](t, serve(h, http.MethodDelete, "/api/settings", "", nil))
	if reset.SelectedLanguage != language.English || !reset.Settings.ShowUnknown {
		t.Fatalf("DELETE settings = %+v", reset)
	}
}

func TestHandleChannelsAndEvaluate(t *testing.T) {
	h := newTestHandler(t)

	w := serve(h, http.MethodPost, "/api/channels", `{"url":"\/@Friend"} <a href="/c/Other">x</a>`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("POST channels = %d: %s", w.Code, w.Body.String())
	}
	imported := decodeBody[api.ChannelsResponse](t, w)
	if imported.Added != 2 || imported.Channels[0] != "/@friend" || imported.Channels[1] != "/c/other" {
		t.Fatalf("imported = %+v", imported)
	}

	w = serve(h, http.MethodPost, "/api/evaluate",
		`{"cards":[{"id":"a","title":"Les plus beaux endroits dans le monde avec nous","channelHrefs":["/@friend"]},{"id":"b","title":"Les plus beaux endroits dans le monde avec nous"}]}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("POST evaluate = %d: %s", w.Code, w.Body.String())
	}
	eval := decodeBody[api.EvaluateResponse](t, w)
	if len(eval.Results) != 2 || eval.Results[0].Hidden || !eval.Results[1].Hidden || eval.Hidden != 1 {
		t.Fatalf("evaluate = %+v", eval)
	}

	cleared := decodeBody[api.ChannelsResponse](t, serve(h, http.MethodDelete, "/api/channels", "", nil))
	if cleared.Count != 0 {
		t.Fatalf("expected cleared channels, got %+v", cleared)
	}
}

func TestAuthMiddleware(t *testing.T) {
	h := newTestHandler(t, testsupport.WithAPIToken("secret"))

	if w := serve(h, http.MethodGet, "/api/status", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token = %d", w.Code)
	}
	bad := http.Header{"Authorization": {"Bearer nope"}}
	if w := serve(h, http.MethodGet, "/api/status", "", bad); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong token = %d", w.Code)
	}
	good := http.Header{"Authorization": {"Bearer secret"}}
	w := serve(h, http.MethodGet, "/api/status", "", good)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token = %d: %s", w.Code, w.Body.String())
	}
	status := decodeBody[api.Status](t, w)
	if status.Running || status.Cache.Limit != 2000 {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestHandler(t)

	w := serve(h, http.MethodGet, "/api/settings", "", nil)
	if _, err := uuid.Parse(w.Header().Get(requestIDHeader)); err != nil {
		t.Fatalf("expected generated uuid, got %q", w.Header().Get(requestIDHeader))
	}

	supplied := uuid.NewString()
	w = serve(h, http.MethodGet, "/api/settings", "", http.Header{requestIDHeader: {supplied}})
	if got := w.Header().Get(requestIDHeader); got != supplied {
		t.Fatalf("request id = %q, want %q", got, supplied)
	}

	w = serve(h, http.MethodGet, "/api/settings", "", http.Header{requestIDHeader: {"not a uuid"}})
	if got := w.Header().Get(requestIDHeader); got == "not a uuid" {
		t.Fatal("malformed request id should be replaced")
	}
}
