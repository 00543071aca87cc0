package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"FoxJournal/internal/repository"
	"FoxJournal/internal/usecase"
	"FoxJournal/pkg/kv"
	xlogger "FoxJournal/pkg/logger"
)

type apiMetrics struct{}

func (apiMetrics) RecordTransaction(string)      {}
func (apiMetrics) RecordAppendBlocked()          {}
func (apiMetrics) RecordRiskActivation()         {}
func (apiMetrics) RecordAutoReset()              {}
func (apiMetrics) RecordError(string)            {}
func (apiMetrics) RecordConsecutiveLosses(int)   {}
func (apiMetrics) RecordLatency(string, float64) {}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	l, err := xlogger.New(&xlogger.Config{Level: "disabled", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	store := repository.NewKVJournalStore(kv.NewMemoryStore())
	journal := usecase.NewJournal(store, apiMetrics{}, l)
	stats := usecase.NewStatistics(store, apiMetrics{})
	reset := usecase.NewReset(journal, store, l)
	settings := usecase.NewSettingsManager(store, l)

	e := echo.New()
	NewJournalEchoHandler(l, journal, stats, reset, settings).RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil && rec.Body.Len() > 0 {
		t.Fatalf("bad response body %q: %v", rec.Body.String(), err)
	}
	return rec, envelope
}

func TestCreateAndListTransactions(t *testing.T) {
	e := newTestServer(t)

	_, envelope := doJSON(t, e, http.MethodPost, "/api/transactions",
		`{"date":"2024-01-15","amount":100,"type":"profit","description":"morning session"}`)
	if envelope["status"].(float64) != http.StatusCreated {
		t.Fatalf("expected created, got %v", envelope)
	}

	_, envelope = doJSON(t, e, http.MethodGet, "/api/transactions?type=profit", "")
	data := envelope["data"].(map[string]interface{})
	if data["total"].(float64) != 1 {
		t.Fatalf("expected 1 transaction, got %v", data)
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	e := newTestServer(t)

	_, envelope := doJSON(t, e, http.MethodPost, "/api/transactions",
		`{"date":"2024-01-15","amount":-5,"type":"profit"}`)
	if envelope["status"].(float64) != http.StatusBadRequest {
		t.Fatalf("expected bad request, got %v", envelope)
	}

	_, envelope = doJSON(t, e, http.MethodPost, "/api/transactions",
		`{"date":"jan 15","amount":5,"type":"profit"}`)
	if envelope["status"].(float64) != http.StatusBadRequest {
		t.Fatalf("expected bad request, got %v", envelope)
	}
}

func TestCoolOffBlocksCreation(t *testing.T) {
	e := newTestServer(t)

	doJSON(t, e, http.MethodPost, "/api/transactions", `{"date":"2024-01-15","amount":50,"type":"loss"}`)
	doJSON(t, e, http.MethodPost, "/api/transactions", `{"date":"2024-01-15","amount":75,"type":"loss"}`)

	_, envelope := doJSON(t, e, http.MethodPost, "/api/transactions",
		`{"date":"2024-01-15","amount":10,"type":"profit"}`)
	if envelope["status"].(float64) != http.StatusForbidden {
		t.Fatalf("expected forbidden while in risk, got %v", envelope)
	}

	_, envelope = doJSON(t, e, http.MethodGet, "/api/risk", "")
	data := envelope["data"].(map[string]interface{})
	if data["isInRisk"] != true {
		t.Fatalf("expected active risk state, got %v", data)
	}
	if data["remainingCoolOff"] == nil {
		t.Fatalf("expected countdown in risk view, got %v", data)
	}
}

func TestManualRiskResetEndpoint(t *testing.T) {
	e := newTestServer(t)

	doJSON(t, e, http.MethodPost, "/api/transactions", `{"date":"2024-01-15","amount":50,"type":"loss"}`)
	doJSON(t, e, http.MethodPost, "/api/transactions", `{"date":"2024-01-15","amount":75,"type":"loss"}`)

	_, envelope := doJSON(t, e, http.MethodPost, "/api/risk/reset", "")
	data := envelope["data"].(map[string]interface{})
	if data["isInRisk"] != false {
		t.Fatalf("expected cleared risk state, got %v", data)
	}
}

func TestStatisticsEndpoint(t *testing.T) {
	e := newTestServer(t)

	doJSON(t, e, http.MethodPost, "/api/transactions", `{"date":"2024-01-15","amount":100,"type":"profit"}`)
	doJSON(t, e, http.MethodPost, "/api/transactions", `{"date":"2024-01-15","amount":50,"type":"loss"}`)

	_, envelope := doJSON(t, e, http.MethodGet, "/api/statistics?period=daily&date=2024-01-15", "")
	data := envelope["data"].(map[string]interface{})
	if data["transactionCount"].(float64) != 2 {
		t.Fatalf("unexpected snapshot %v", data)
	}
	if data["profitRate"].(float64) != 50 {
		t.Fatalf("unexpected profit rate %v", data["profitRate"])
	}
}

func TestResetEndpointTokenGate(t *testing.T) {
	e := newTestServer(t)

	doJSON(t, e, http.MethodPost, "/api/transactions", `{"date":"2024-01-15","amount":100,"type":"profit"}`)

	_, envelope := doJSON(t, e, http.MethodPost, "/api/reset", `{"action":"reset","confirmCode":"wrong"}`)
	if envelope["status"].(float64) != http.StatusBadRequest {
		t.Fatalf("expected bad request for wrong token, got %v", envelope)
	}

	_, envelope = doJSON(t, e, http.MethodPost, "/api/reset", `{"action":"reset","confirmCode":"RESET_ALL_DATA"}`)
	if envelope["status"].(float64) != http.StatusOK {
		t.Fatalf("expected success, got %v", envelope)
	}

	_, envelope = doJSON(t, e, http.MethodGet, "/api/reset", "")
	data := envelope["data"].(map[string]interface{})
	if data["transactionCount"].(float64) != 0 {
		t.Fatalf("ledger not emptied: %v", data)
	}
	if data["lastResetTime"] == nil {
		t.Fatalf("reset audit marker missing: %v", data)
	}
}

func TestSettingsEndpoints(t *testing.T) {
	e := newTestServer(t)

	_, envelope := doJSON(t, e, http.MethodGet, "/api/settings", "")
	data := envelope["data"].(map[string]interface{})
	if data["currency"] != "¥" || data["dataRetentionDays"].(float64) != 365 {
		t.Fatalf("unexpected defaults %v", data)
	}

	_, envelope = doJSON(t, e, http.MethodPut, "/api/settings", `{"theme":"dark"}`)
	data = envelope["data"].(map[string]interface{})
	if data["theme"] != "dark" || data["currency"] != "¥" {
		t.Fatalf("partial update failed: %v", data)
	}

	_, envelope = doJSON(t, e, http.MethodPut, "/api/settings", `{"theme":"solarized"}`)
	if envelope["status"].(float64) != http.StatusBadRequest {
		t.Fatalf("expected validation failure, got %v", envelope)
	}
}
