package api

import (
	"bytes"
	"encoding/csv"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/cyclewise/internal/services"
	"github.com/xuri/excelize/v2"
)

func seedExportData(t *testing.T, ta *testApp) {
	t.Helper()
	require.Equal(t, http.StatusOK, ta.putLog(t, "2026-03-02", fiber.Map{"cramps": 3, "sleep_quality": 2, "notes": "rest"}).StatusCode)
	require.Equal(t, http.StatusOK, ta.putLog(t, "2026-03-06", fiber.Map{"fatigue": 1, "sleep_quality": 4}).StatusCode)
	response := ta.do(t, http.MethodPost, "/api/journal", fiber.Map{"date": "2026-03-06", "mood": "good", "symptoms": []string{"Cramps"}})
	require.Equal(t, http.StatusCreated, response.StatusCode)
	response = ta.putEntry(t, "2026-03-01", fiber.Map{"flow": "heavy", "symptoms": []string{"Cramps"}})
	require.Equal(t, http.StatusOK, response.StatusCode)
}

func TestExportJSON(t *testing.T) {
	ta := newTestApp(t)
	seedExportData(t, ta)

	response := ta.do(t, http.MethodGet, "/api/export/json", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "attachment; filename=cyclewise-export-2026-03-10.json", response.Header.Get(fiber.HeaderContentDisposition))

	payload := services.ExportPayload{}
	decodeJSON(t, response, &payload)
	assert.Equal(t, "2026-03-10T12:00:00Z", payload.ExportedAt)
	require.Len(t, payload.Logs, 2)
	assert.Equal(t, "2026-03-02", payload.Logs[0].Date)
	assert.Equal(t, "rest", payload.Logs[0].Notes)
	require.Len(t, payload.Journal, 1)
	assert.Equal(t, []string{"Cramps"}, payload.Journal[0].Symptoms)
	require.Len(t, payload.CycleEntries, 1)
	assert.Equal(t, "heavy", payload.CycleEntries[0].Flow)
	assert.Equal(t, 1, payload.Summary.TotalCycleEntries)
	assert.Equal(t, "2026-03-01", payload.Summary.DateFrom)
	assert.True(t, payload.Summary.HasData)
}

func TestExportJSONRange(t *testing.T) {
	ta := newTestApp(t)
	seedExportData(t, ta)

	response := ta.do(t, http.MethodGet, "/api/export/json?from=2026-03-01&to=2026-03-03", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	payload := services.ExportPayload{}
	decodeJSON(t, response, &payload)
	require.Len(t, payload.Logs, 1)
	assert.Equal(t, "2026-03-02", payload.Logs[0].Date)
	assert.Len(t, payload.CycleEntries, 1)
	assert.Empty(t, payload.Journal)

	response = ta.do(t, http.MethodGet, "/api/export/json?from=bad", nil)
	require.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "Invalid start date.", readAPIError(t, response))
}

func TestExportCSV(t *testing.T) {
	ta := newTestApp(t)
	seedExportData(t, ta)

	response := ta.do(t, http.MethodGet, "/api/export/csv", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, response.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Equal(t, "attachment; filename=cyclewise-export-2026-03-10.csv", response.Header.Get(fiber.HeaderContentDisposition))

	rows, err := csv.NewReader(response.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, services.ExportLogHeaders, rows[0])
	assert.Equal(t, "2026-03-02", rows[1][0])
	assert.Equal(t, "2026-03-06", rows[2][0])
}

func TestExportXLSX(t *testing.T) {
	ta := newTestApp(t)
	seedExportData(t, ta)

	response := ta.do(t, http.MethodGet, "/api/export/xlsx", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, xlsxContentType, response.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	workbook, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Symptom logs")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, services.ExportLogHeaders, rows[0])

	entryRows, err := workbook.GetRows("Period entries")
	require.NoError(t, err)
	require.Len(t, entryRows, 2)
	assert.Equal(t, services.ExportCycleEntryHeaders, entryRows[0])
	assert.Equal(t, "heavy", entryRows[1][1])

	journalRows, err := workbook.GetRows("Journal")
	require.NoError(t, err)
	require.Len(t, journalRows, 2)
	assert.Equal(t, "good", journalRows[1][1])
}
