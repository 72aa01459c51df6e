package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/cyclewise/internal/db"
	"github.com/terraincognita07/cyclewise/internal/i18n"
	"github.com/terraincognita07/cyclewise/internal/services"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type firstIndex struct{}

func (firstIndex) Intn(int) int { return 0 }

type testApp struct {
	app     *fiber.App
	handler *Handler
	repos   *db.Repositories
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger, _ := logrustest.NewNullLogger()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cyclewise-api-test.db"), logger)
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewEmbeddedManager("en")
	require.NoError(t, err)

	repos := db.NewRepositories(database)
	profiles := services.NewProfileService(repos.Profiles, logger)
	symptomLogs := services.NewSymptomLogService(repos.SymptomLogs)
	entries := services.NewCycleEntryService(repos.Entries)
	journal := services.NewJournalService(repos.Journal)

	handler := NewHandler(Dependencies{
		Profiles:    profiles,
		SymptomLogs: symptomLogs,
		Entries:     entries,
		Journal:     journal,
		Insights:    services.NewInsightService(profiles, symptomLogs, journal, firstIndex{}),
		Lock:        services.NewLockService(repos.Locks, []byte(strings.Repeat("k", 32)), time.Hour),
		Export:      services.NewExportService(symptomLogs, entries, journal),
		I18n:        i18nManager,
		Location:    time.UTC,
		Log:         logger,
	})
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	return &testApp{app: app, handler: handler, repos: repos}
}

// do sends a JSON request. Extra headers come in name, value pairs.
func (ta *testApp) do(t *testing.T, method string, path string, body interface{}, headers ...string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for index := 0; index+1 < len(headers); index += 2 {
		request.Header.Set(headers[index], headers[index+1])
	}

	response, err := ta.app.Test(request, -1)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func (ta *testApp) saveProfile(t *testing.T, lastPeriod string, cycleLength int, periodLength int) {
	t.Helper()
	response := ta.do(t, http.MethodPut, "/api/profile", fiber.Map{
		"last_period_date": lastPeriod,
		"cycle_length":     cycleLength,
		"period_length":    periodLength,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)
}

func (ta *testApp) putLog(t *testing.T, date string, payload fiber.Map) *http.Response {
	t.Helper()
	return ta.do(t, http.MethodPut, "/api/logs/"+date, payload)
}

func (ta *testApp) putEntry(t *testing.T, date string, payload fiber.Map) *http.Response {
	t.Helper()
	return ta.do(t, http.MethodPut, "/api/cycle/entries/"+date, payload)
}

func decodeJSON(t *testing.T, response *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, target), "body: %s", string(body))
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()
	payload := map[string]interface{}{}
	decodeJSON(t, response, &payload)
	message, _ := payload["error"].(string)
	return message
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
