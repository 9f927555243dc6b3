package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Luciano655dev/HobbyASAP/budget"
	"github.com/Luciano655dev/HobbyASAP/llm"
	"github.com/Luciano655dev/HobbyASAP/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDailyLimit = 1000

// stubCompleter counts calls and returns a canned completion.
type stubCompleter struct {
	mu       sync.Mutex
	calls    int
	response *llm.Response
	err      error
}

func (s *stubCompleter) ChatCompletion(ctx context.Context, req llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubCompleter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type testEnv struct {
	router   *gin.Engine
	stub     *stubCompleter
	counters *store.MemoryCounters
	gate     *budget.Gate
}

func setup(t *testing.T, stub *stubCompleter) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	counters := store.NewMemoryCounters()
	gate := budget.NewGate(counters, testDailyLimit)
	h := New(stub, gate, counters)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/generate", h.HandleGenerate)
	api.POST("/lesson", h.HandleLesson)
	api.POST("/ask", h.HandleAsk)
	api.POST("/metrics", h.HandleMetricsIncrement)
	api.GET("/metrics", h.HandleMetricsGet)

	return &testEnv{router: router, stub: stub, counters: counters, gate: gate}
}

func (e *testEnv) post(t *testing.T, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) exhaustBudget(t *testing.T) {
	t.Helper()
	dayKey := e.gate.Check(context.Background()).DayKey
	_, err := e.counters.IncrBy(context.Background(), dayKey, testDailyLimit, 0)
	require.NoError(t, err)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const fencedPlanCompletion = "```json\n{\"hobby\":\"chess\",\"level\":\"complete beginner\",\"icon\":\"♟\",\"theme\":{\"from\":\"#111111\",\"to\":\"#222222\"},\"sections\":[{\"id\":\"intro-1\",\"kind\":\"intro\",\"title\":\"Welcome\",\"body\":\"...\"}]}\n```"

func TestGenerate_Success(t *testing.T) {
	stub := &stubCompleter{response: &llm.Response{Content: fencedPlanCompletion, TokensUsed: 1200}}
	env := setup(t, stub)

	rec := env.post(t, "/api/generate", `{"hobby": "chess", "level": "complete beginner"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	plan, ok := body["plan"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "chess", plan["hobby"])
	assert.NotContains(t, body, "error")
	assert.Equal(t, 1, stub.callCount())

	// token usage and the prompt counter both recorded
	dayKey := env.gate.Check(context.Background()).DayKey
	used, err := env.counters.Get(context.Background(), dayKey)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), used)

	prompts, err := env.counters.Get(context.Background(), promptsKey)
	require.NoError(t, err)
	assert.Equal(t, int64(1), prompts)
}

func TestGenerate_MissingHobby(t *testing.T) {
	stub := &stubCompleter{}
	env := setup(t, stub)

	for _, body := range []string{`{}`, `{"hobby": ""}`, `{"hobby": "   "}`} {
		rec := env.post(t, "/api/generate", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, string(CodeInvalidInput), decodeBody(t, rec)["code"], body)
	}
	assert.Zero(t, stub.callCount())
}

func TestGenerate_BudgetExceeded(t *testing.T) {
	stub := &stubCompleter{}
	env := setup(t, stub)
	env.exhaustBudget(t)

	rec := env.post(t, "/api/generate", `{"hobby": "chess"}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, string(CodeBudgetExceeded), decodeBody(t, rec)["code"])
	assert.Zero(t, stub.callCount())
}

func TestGenerate_NoJSONInCompletion_StillRecordsUsage(t *testing.T) {
	stub := &stubCompleter{response: &llm.Response{
		Content:    "I am sorry, I cannot produce a plan right now.",
		TokensUsed: 42,
	}}
	env := setup(t, stub)

	rec := env.post(t, "/api/generate", `{"hobby": "chess"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, string(CodeNoJSONFound), decodeBody(t, rec)["code"])

	dayKey := env.gate.Check(context.Background()).DayKey
	used, err := env.counters.Get(context.Background(), dayKey)
	require.NoError(t, err)
	assert.Equal(t, int64(42), used)

	// no prompt counted for a failed generation
	prompts, err := env.counters.Get(context.Background(), promptsKey)
	require.NoError(t, err)
	assert.Zero(t, prompts)
}

func TestGenerate_InvalidJSONCompletion(t *testing.T) {
	stub := &stubCompleter{response: &llm.Response{
		Content:    `{"hobby": "chess", "sections": [,]}`,
		TokensUsed: 10,
	}}
	env := setup(t, stub)

	rec := env.post(t, "/api/generate", `{"hobby": "chess"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, string(CodeParseError), decodeBody(t, rec)["code"])
}

const lessonCompletion = `{
	"kind": "masterclass",
	"title": "Openings that teach you chess",
	"topic": "opening principles",
	"goal": "g",
	"estimatedTimeMinutes": 40,
	"level": "complete beginner",
	"hobby": "chess",
	"summary": "s",
	"sections": [{"heading": "The center", "body": "Control the center."}],
	"practiceIdeas": ["Play five games focusing only on development."]
}`

func TestLesson_Success(t *testing.T) {
	stub := &stubCompleter{response: &llm.Response{Content: lessonCompletion, TokensUsed: 900}}
	env := setup(t, stub)

	rec := env.post(t, "/api/lesson",
		`{"hobby": "chess", "kind": "masterclass", "topic": "openings"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	lesson, ok := body["lesson"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "masterclass", lesson["kind"])
	assert.Equal(t, 1, stub.callCount())
}

func TestLesson_InvalidKind(t *testing.T) {
	stub := &stubCompleter{}
	env := setup(t, stub)

	rec := env.post(t, "/api/lesson", `{"hobby": "chess", "kind": "webinar", "topic": "openings"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(CodeInvalidInput), decodeBody(t, rec)["code"])
	assert.Zero(t, stub.callCount())
}

func TestLesson_MissingTopic(t *testing.T) {
	stub := &stubCompleter{}
	env := setup(t, stub)

	rec := env.post(t, "/api/lesson", `{"hobby": "chess", "kind": "inDepth"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, stub.callCount())
}

const askRequestBody = `{
	"question": "What should I practice first?",
	"plan": {
		"hobby": "chess",
		"level": "complete beginner",
		"icon": "♟",
		"theme": {"from": "#111111", "to": "#222222"},
		"sections": [{"id": "intro-1", "kind": "intro", "title": "Welcome", "body": "..."}]
	}
}`

func TestAsk_Success(t *testing.T) {
	stub := &stubCompleter{response: &llm.Response{
		Content:    `{"answer": "Start with tactics.", "tasks": [{"label": "solve three puzzles", "minutes": 15, "xp": 10}], "inDepthTopic": null}`,
		TokensUsed: 300,
	}}
	env := setup(t, stub)

	rec := env.post(t, "/api/ask", askRequestBody)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "Start with tactics.", body["answer"])
	tasks, ok := body["tasks"].([]any)
	require.True(t, ok)
	assert.Len(t, tasks, 1)
	assert.Nil(t, body["inDepthTopic"])
}

func TestAsk_SuggestsInDepthTopic(t *testing.T) {
	stub := &stubCompleter{response: &llm.Response{
		Content: `{"answer": "Rook endgames decide most games.", "tasks": [], "inDepthTopic": "rook endgames"}`,
	}}
	env := setup(t, stub)

	rec := env.post(t, "/api/ask", askRequestBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rook endgames", decodeBody(t, rec)["inDepthTopic"])
}

func TestAsk_WithoutPlanDoesNotCallModel(t *testing.T) {
	stub := &stubCompleter{}
	env := setup(t, stub)

	rec := env.post(t, "/api/ask", `{"question": "What should I practice first?"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(CodeInvalidInput), decodeBody(t, rec)["code"])
	assert.Zero(t, stub.callCount())
}

func TestAsk_BlankQuestion(t *testing.T) {
	stub := &stubCompleter{}
	env := setup(t, stub)

	rec := env.post(t, "/api/ask", `{"question": "  ", "plan": null}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, stub.callCount())
}

func TestMetrics_IncrementAndGet(t *testing.T) {
	env := setup(t, &stubCompleter{})

	for i := 0; i < 3; i++ {
		rec := env.post(t, "/api/metrics", `{"type": "prompt"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	rec := env.post(t, "/api/metrics", `{"type": "newUser"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	getRec := httptest.NewRecorder()
	env.router.ServeHTTP(getRec, req)

	require.Equal(t, http.StatusOK, getRec.Code)
	body := decodeBody(t, getRec)
	assert.Equal(t, float64(3), body["prompts"])
	assert.Equal(t, float64(1), body["users"])
	assert.NotContains(t, body, "disabled")
}

func TestMetrics_InvalidType(t *testing.T) {
	env := setup(t, &stubCompleter{})

	rec := env.post(t, "/api/metrics", `{"type": "pageview"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetrics_DisabledWithoutStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(&stubCompleter{}, budget.NewGate(nil, testDailyLimit), nil)

	router := gin.New()
	router.POST("/api/metrics", h.HandleMetricsIncrement)
	router.GET("/api/metrics", h.HandleMetricsGet)

	req := httptest.NewRequest(http.MethodPost, "/api/metrics", bytes.NewBufferString(`{"type": "prompt"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, true, body["disabled"])

	getReq := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)

	require.Equal(t, http.StatusOK, getRec.Code)
	getBody := decodeBody(t, getRec)
	assert.Equal(t, float64(0), getBody["prompts"])
	assert.Equal(t, true, getBody["disabled"])
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	stub := &stubCompleter{err: context.DeadlineExceeded}
	env := setup(t, stub)

	rec := env.post(t, "/api/generate", `{"hobby": "chess"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, string(CodeUpstreamFailure), decodeBody(t, rec)["code"])
}
