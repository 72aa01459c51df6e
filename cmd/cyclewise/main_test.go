package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/cyclewise/internal/cli"
	"github.com/terraincognita07/cyclewise/internal/config"
	"github.com/terraincognita07/cyclewise/internal/services"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	log, _ := logrustest.NewNullLogger()
	log.SetLevel(logrus.InfoLevel)
	app, err := newApplication(config.Config{
		Port:               "8080",
		DBPath:             filepath.Join(t.TempDir(), "cyclewise-main-test.db"),
		Location:           time.UTC,
		LogLevel:           logrus.InfoLevel,
		DefaultLanguage:    "en",
		SecretKey:          []byte(strings.Repeat("s", 32)),
		ReminderSchedule:   config.DefaultReminderSchedule,
		ReminderDaysBefore: config.DefaultReminderDaysBefore,
	}, log)
	require.NoError(t, err)
	t.Cleanup(app.close)
	return app
}

func TestHTTPAppServesHealthAndAPI(t *testing.T) {
	app := newTestApplication(t)
	server := newHTTPApp(app)

	response, err := server.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)

	response, err = server.Test(httptest.NewRequest(http.MethodGet, "/api/profile", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)

	response, err = server.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestRunCommandResetDataNeedsConfirmation(t *testing.T) {
	app := newTestApplication(t)
	_, err := app.profiles.Save(services.CycleProfileInput{LastPeriodDate: "2026-03-01", CycleLength: 28, PeriodLength: 5})
	require.NoError(t, err)

	var out bytes.Buffer
	err = runCommand(app, []string{"reset-data"}, nil, &out)
	require.True(t, errors.Is(err, cli.ErrResetNotConfirmed), "got %v", err)
	_, err = app.profiles.Get()
	require.NoError(t, err)

	require.NoError(t, runCommand(app, []string{"reset-data", "--yes"}, nil, &out))
	_, err = app.profiles.Get()
	assert.True(t, errors.Is(err, services.ErrProfileNotFound))
}

func TestRunCommandSummary(t *testing.T) {
	app := newTestApplication(t)

	var out bytes.Buffer
	require.Error(t, runCommand(app, []string{"summary"}, nil, &out))

	today := services.FormatDay(services.TodayAt(time.Now(), time.UTC))
	_, err := app.profiles.Save(services.CycleProfileInput{LastPeriodDate: today, CycleLength: 28, PeriodLength: 5})
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, runCommand(app, []string{"summary"}, nil, &out))
	assert.Contains(t, out.String(), "day 1 of 28")
}

func TestRunCommandClearPasscode(t *testing.T) {
	app := newTestApplication(t)
	require.NoError(t, app.lock.SetPasscode("2468"))

	var out bytes.Buffer
	require.NoError(t, runCommand(app, []string{"clear-passcode"}, nil, &out))
	locked, err := app.lock.IsLocked()
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestRunCommandRejectsUnknownCommand(t *testing.T) {
	app := newTestApplication(t)

	err := runCommand(app, []string{"frobnicate"}, nil, &bytes.Buffer{})
	assert.True(t, errors.Is(err, errUnknownCommand))

	var out bytes.Buffer
	require.NoError(t, runCommand(app, []string{"help"}, nil, &out))
	assert.Contains(t, out.String(), "reset-data --yes")
}

func TestNewNotifierFallsBackToLog(t *testing.T) {
	app := newTestApplication(t)
	_, isLog := newNotifier(app).(services.LogNotifier)
	assert.True(t, isLog)

	app.config.TelegramBotToken = "token"
	app.config.TelegramChatID = "42"
	_, isTelegram := newNotifier(app).(*services.TelegramNotifier)
	assert.True(t, isTelegram)
}

func TestHTTPAppAddsCORSHeadersWhenConfigured(t *testing.T) {
	app := newTestApplication(t)
	app.config.CORSAllowedOrigins = "https://cycle.example"
	server := newHTTPApp(app)

	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	request.Header.Set("Origin", "https://cycle.example")
	response, err := server.Test(request, -1)
	require.NoError(t, err)
	assert.Equal(t, "https://cycle.example", response.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", response.Header.Get("Access-Control-Allow-Credentials"))
}

func TestHTTPAppDropsCredentialsForWildcardCORSOrigin(t *testing.T) {
	for _, origins := range []string{"*", "https://cycle.example, *"} {
		t.Run(origins, func(t *testing.T) {
			app := newTestApplication(t)
			app.config.CORSAllowedOrigins = origins

			var server *fiber.App
			require.NotPanics(t, func() {
				server = newHTTPApp(app)
			})

			request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			request.Header.Set("Origin", "https://elsewhere.example")
			response, err := server.Test(request, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, response.StatusCode)
			assert.Equal(t, "*", response.Header.Get("Access-Control-Allow-Origin"))
			assert.Empty(t, response.Header.Get("Access-Control-Allow-Credentials"))
		})
	}
}
