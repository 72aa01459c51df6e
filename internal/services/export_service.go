package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	exportLogsSheet    = "Symptom logs"
	exportEntriesSheet = "Period entries"
	exportJournalSheet = "Journal"
)

var ExportLogHeaders = []string{
	"Date",
	"Cramps",
	"Fatigue",
	"Mood swings",
	"Sleep quality",
	"Bloating",
	"Headache",
	"Notes",
}

var ExportCycleEntryHeaders = []string{
	"Date",
	"Flow",
	"Mood",
	"Symptoms",
	"Notes",
}

var ExportJournalHeaders = []string{
	"Date",
	"Mood",
	"Symptoms",
	"Reflection",
	"Created at",
}

type ExportLogReader interface {
	ListRange(from *time.Time, to *time.Time) ([]models.SymptomLog, error)
}

type ExportCycleEntryReader interface {
	ListRange(from *time.Time, to *time.Time) ([]models.CycleEntry, error)
}

type ExportJournalReader interface {
	List() ([]models.JournalEntry, error)
}

type ExportService struct {
	logs    ExportLogReader
	entries ExportCycleEntryReader
	journal ExportJournalReader
}

type ExportSummary struct {
	TotalLogs         int    `json:"total_logs"`
	TotalCycleEntries int    `json:"total_cycle_entries"`
	TotalEntries      int    `json:"total_journal_entries"`
	HasData           bool   `json:"has_data"`
	DateFrom          string `json:"date_from,omitempty"`
	DateTo            string `json:"date_to,omitempty"`
}

type ExportLogEntry struct {
	Date         string `json:"date"`
	Cramps       int    `json:"cramps"`
	Fatigue      int    `json:"fatigue"`
	MoodSwings   int    `json:"mood_swings"`
	SleepQuality int    `json:"sleep_quality"`
	Bloating     bool   `json:"bloating"`
	Headache     bool   `json:"headache"`
	Notes        string `json:"notes"`
}

type ExportCycleEntry struct {
	Date     string   `json:"date"`
	Flow     string   `json:"flow"`
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type ExportJournalEntry struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Mood       string   `json:"mood"`
	Symptoms   []string `json:"symptoms"`
	Reflection string   `json:"reflection"`
	CreatedAt  string   `json:"created_at"`
}

type ExportPayload struct {
	ExportedAt   string               `json:"exported_at"`
	Summary      ExportSummary        `json:"summary"`
	Logs         []ExportLogEntry     `json:"logs"`
	CycleEntries []ExportCycleEntry   `json:"cycle_entries"`
	Journal      []ExportJournalEntry `json:"journal"`
}

func NewExportService(logs ExportLogReader, entries ExportCycleEntryReader, journal ExportJournalReader) *ExportService {
	return &ExportService{
		logs:    logs,
		entries: entries,
		journal: journal,
	}
}

// BuildPayload collects logs and period entries in the optional date range
// (oldest first) and journal entries whose date falls in the same range.
func (service *ExportService) BuildPayload(from *time.Time, to *time.Time, now time.Time) (ExportPayload, error) {
	logs, err := service.logs.ListRange(from, to)
	if err != nil {
		return ExportPayload{}, err
	}
	cycleEntries, err := service.entries.ListRange(from, to)
	if err != nil {
		return ExportPayload{}, err
	}
	entries, err := service.journal.List()
	if err != nil {
		return ExportPayload{}, err
	}

	payload := ExportPayload{
		ExportedAt:   now.UTC().Format(time.RFC3339),
		Logs:         make([]ExportLogEntry, 0, len(logs)),
		CycleEntries: make([]ExportCycleEntry, 0, len(cycleEntries)),
		Journal:      make([]ExportJournalEntry, 0, len(entries)),
	}

	for _, entry := range logs {
		payload.Logs = append(payload.Logs, ExportLogEntry{
			Date:         FormatDay(entry.Date),
			Cramps:       int(entry.Cramps),
			Fatigue:      int(entry.Fatigue),
			MoodSwings:   int(entry.MoodSwings),
			SleepQuality: entry.SleepQuality,
			Bloating:     entry.Bloating,
			Headache:     entry.Headache,
			Notes:        entry.Notes,
		})
	}
	sort.SliceStable(payload.Logs, func(i, j int) bool {
		return payload.Logs[i].Date < payload.Logs[j].Date
	})

	for _, entry := range cycleEntries {
		symptoms := make([]string, len(entry.Symptoms))
		copy(symptoms, entry.Symptoms)
		payload.CycleEntries = append(payload.CycleEntries, ExportCycleEntry{
			Date:     FormatDay(entry.Date),
			Flow:     entry.Flow,
			Mood:     entry.Mood,
			Symptoms: symptoms,
			Notes:    entry.Notes,
		})
	}
	sort.SliceStable(payload.CycleEntries, func(i, j int) bool {
		return payload.CycleEntries[i].Date < payload.CycleEntries[j].Date
	})

	for _, entry := range entries {
		if !dayInRange(entry.Date, from, to) {
			continue
		}
		symptoms := make([]string, len(entry.Symptoms))
		copy(symptoms, entry.Symptoms)
		payload.Journal = append(payload.Journal, ExportJournalEntry{
			ID:         entry.ID,
			Date:       FormatDay(entry.Date),
			Mood:       string(entry.Mood),
			Symptoms:   symptoms,
			Reflection: entry.Reflection,
			CreatedAt:  entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	payload.Summary = summarizeExport(payload)
	return payload, nil
}

func (service *ExportService) WriteCSV(w io.Writer, payload ExportPayload) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportLogHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range payload.Logs {
		if err := writer.Write(entry.Columns()); err != nil {
			return fmt.Errorf("write csv row %s: %w", entry.Date, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes a sheet each for symptom logs, period entries and the
// journal.
func (service *ExportService) WriteXLSX(w io.Writer, payload ExportPayload) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName(workbook.GetSheetName(0), exportLogsSheet); err != nil {
		return fmt.Errorf("rename logs sheet: %w", err)
	}
	if _, err := workbook.NewSheet(exportEntriesSheet); err != nil {
		return fmt.Errorf("create entries sheet: %w", err)
	}
	if _, err := workbook.NewSheet(exportJournalSheet); err != nil {
		return fmt.Errorf("create journal sheet: %w", err)
	}

	logRows := make([][]string, 0, len(payload.Logs)+1)
	logRows = append(logRows, ExportLogHeaders)
	for _, entry := range payload.Logs {
		logRows = append(logRows, entry.Columns())
	}
	if err := writeSheetRows(workbook, exportLogsSheet, logRows); err != nil {
		return err
	}

	entryRows := make([][]string, 0, len(payload.CycleEntries)+1)
	entryRows = append(entryRows, ExportCycleEntryHeaders)
	for _, entry := range payload.CycleEntries {
		entryRows = append(entryRows, []string{
			entry.Date,
			entry.Flow,
			entry.Mood,
			strings.Join(entry.Symptoms, "; "),
			entry.Notes,
		})
	}
	if err := writeSheetRows(workbook, exportEntriesSheet, entryRows); err != nil {
		return err
	}

	journalRows := make([][]string, 0, len(payload.Journal)+1)
	journalRows = append(journalRows, ExportJournalHeaders)
	for _, entry := range payload.Journal {
		journalRows = append(journalRows, []string{
			entry.Date,
			entry.Mood,
			strings.Join(entry.Symptoms, "; "),
			entry.Reflection,
			entry.CreatedAt,
		})
	}
	if err := writeSheetRows(workbook, exportJournalSheet, journalRows); err != nil {
		return err
	}

	if _, err := workbook.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeSheetRows(workbook *excelize.File, sheet string, rows [][]string) error {
	for index, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, index+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, 0, len(row))
		for _, value := range row {
			values = append(values, value)
		}
		if err := workbook.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, index+1, err)
		}
	}
	return nil
}

func (entry ExportLogEntry) Columns() []string {
	return []string{
		entry.Date,
		models.Severity(entry.Cramps).Label(),
		models.Severity(entry.Fatigue).Label(),
		models.Severity(entry.MoodSwings).Label(),
		strconv.Itoa(entry.SleepQuality),
		exportYesNo(entry.Bloating),
		exportYesNo(entry.Headache),
		entry.Notes,
	}
}

func summarizeExport(payload ExportPayload) ExportSummary {
	summary := ExportSummary{
		TotalLogs:         len(payload.Logs),
		TotalCycleEntries: len(payload.CycleEntries),
		TotalEntries:      len(payload.Journal),
	}
	summary.HasData = summary.TotalLogs+summary.TotalCycleEntries+summary.TotalEntries > 0

	dates := make([]string, 0, 4)
	if len(payload.Logs) > 0 {
		dates = append(dates, payload.Logs[0].Date, payload.Logs[len(payload.Logs)-1].Date)
	}
	if len(payload.CycleEntries) > 0 {
		dates = append(dates, payload.CycleEntries[0].Date, payload.CycleEntries[len(payload.CycleEntries)-1].Date)
	}
	if len(dates) == 0 {
		return summary
	}
	sort.Strings(dates)
	summary.DateFrom = dates[0]
	summary.DateTo = dates[len(dates)-1]
	return summary
}

func dayInRange(value time.Time, from *time.Time, to *time.Time) bool {
	day := CalendarDay(value)
	if from != nil && day.Before(CalendarDay(*from)) {
		return false
	}
	if to != nil && day.After(CalendarDay(*to)) {
		return false
	}
	return true
}

func exportYesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
