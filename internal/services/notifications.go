package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclewise/internal/models"
)

const DefaultReminderSchedule = "0 9 * * *"

type Notifier interface {
	Notify(ctx context.Context, message string) error
}

type ReminderProfileReader interface {
	Get() (models.CycleProfile, error)
}

type ReminderConfig struct {
	Schedule   string
	DaysBefore int
	Location   *time.Location
}

// ReminderService sends one upcoming-period reminder per day on a cron
// schedule.
type ReminderService struct {
	profiles   ReminderProfileReader
	notifier   Notifier
	log        logrus.FieldLogger
	schedule   string
	daysBefore int
	location   *time.Location
	now        func() time.Time

	mu       sync.Mutex
	lastSent time.Time
}

func NewReminderService(profiles ReminderProfileReader, notifier Notifier, config ReminderConfig, log logrus.FieldLogger) *ReminderService {
	if config.Location == nil {
		config.Location = time.UTC
	}
	if strings.TrimSpace(config.Schedule) == "" {
		config.Schedule = DefaultReminderSchedule
	}
	if config.DaysBefore < 0 {
		config.DaysBefore = 0
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ReminderService{
		profiles:   profiles,
		notifier:   notifier,
		log:        log,
		schedule:   config.Schedule,
		daysBefore: config.DaysBefore,
		location:   config.Location,
		now:        time.Now,
	}
}

// Start registers the job and runs the scheduler until ctx is cancelled.
func (service *ReminderService) Start(ctx context.Context) error {
	scheduler := cron.New(cron.WithLocation(service.location))
	if _, err := scheduler.AddFunc(service.schedule, func() {
		if _, err := service.RunOnce(ctx); err != nil {
			service.log.WithError(err).Warn("reminders: run failed")
		}
	}); err != nil {
		return fmt.Errorf("schedule reminders %q: %w", service.schedule, err)
	}

	scheduler.Start()
	go func() {
		<-ctx.Done()
		<-scheduler.Stop().Done()
	}()
	return nil
}

// RunOnce checks today's distance to the next period and notifies when it
// matches the configured lead time. It reports whether a message went out.
func (service *ReminderService) RunOnce(ctx context.Context) (bool, error) {
	profile, err := service.profiles.Get()
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return false, nil
		}
		return false, err
	}

	now := service.now().In(service.location)
	today := TodayAt(now, service.location)
	daysUntil := DaysUntilNextPeriod(profile, today)
	if daysUntil != service.daysBefore {
		return false, nil
	}
	if !service.markSent(today) {
		return false, nil
	}

	message := fmt.Sprintf("Cyclewise reminder: your next period is expected in %d day(s), around %s.",
		daysUntil,
		NextPeriodDate(profile, today).Format("Jan 2"),
	)
	if err := service.notifier.Notify(ctx, message); err != nil {
		service.unmarkSent(today)
		return false, fmt.Errorf("send reminder: %w", err)
	}
	service.log.WithField("days_until", daysUntil).Info("reminders: period reminder sent")
	return true, nil
}

func (service *ReminderService) markSent(today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()
	if !service.lastSent.IsZero() && service.lastSent.Equal(today) {
		return false
	}
	service.lastSent = today
	return true
}

func (service *ReminderService) unmarkSent(today time.Time) {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.lastSent.Equal(today) {
		service.lastSent = time.Time{}
	}
}

// LogNotifier is used when no Telegram credentials are configured.
type LogNotifier struct {
	Log logrus.FieldLogger
}

func (notifier LogNotifier) Notify(_ context.Context, message string) error {
	log := notifier.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithField("channel", "log").Info(message)
	return nil
}

type TelegramNotifier struct {
	botToken string
	chatID   string
	endpoint string
	client   *http.Client
}

func NewTelegramNotifier(botToken string, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		endpoint: "https://api.telegram.org",
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (notifier *TelegramNotifier) Notify(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", notifier.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", notifier.endpoint, notifier.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := notifier.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
