// Package emailjs implements perftrack's Notifier against the EmailJS
// templated-email REST API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anhvtran/perftrack"
	"github.com/anhvtran/perftrack/stats"
)

const sendPath = "/api/v1.0/email/send"

type Client struct {
	baseURL    string
	httpClient *http.Client
	l          perftrack.Logger
	now        func() time.Time
}

var _ perftrack.Notifier = (*Client)(nil)

func NewClient(baseURL string, logger perftrack.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		l:          logger,
		now:        time.Now,
	}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// SendWeeklyReport emails this week's rollup. It returns false without
// attempting the call when the settings are incomplete, and false with a
// logged diagnostic on transport failure.
func (c *Client) SendWeeklyReport(ctx context.Context, activities []perftrack.ActivityLog, tasks []perftrack.Task, settings perftrack.Settings) bool {
	if !settings.Configured() {
		c.l.Warn("email settings not configured")
		return false
	}

	weekly := stats.Weekly(activities, c.now())
	var completed int
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	params := map[string]any{
		"to_email":           settings.Email,
		"week_start":         weekly.Days[0].Date.String(),
		"week_end":           weekly.Days[6].Date.String(),
		"total_hours":        fmt.Sprintf("%.1f", weekly.TotalHours),
		"total_activities":   weekly.ActivityCount,
		"completed_tasks":    completed,
		"pending_tasks":      len(tasks) - completed,
		"completion_rate":    stats.CompletionRate(tasks),
		"category_breakdown": formatBreakdown(weekly.Categories),
	}

	if err := c.send(ctx, settings, params); err != nil {
		c.l.Error("failed to send weekly report", "error", err)
		return false
	}
	return true
}

// SendWeeklyReminder emails a nudge listing pending tasks and whether any
// activity was logged today.
func (c *Client) SendWeeklyReminder(ctx context.Context, activities []perftrack.ActivityLog, tasks []perftrack.Task, settings perftrack.Settings) bool {
	if !settings.Configured() {
		c.l.Warn("email settings not configured")
		return false
	}

	var pending []string
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t.Name)
		}
	}
	names := pending
	if len(names) > 5 {
		names = names[:5]
	}

	today := perftrack.DateOf(c.now())
	var loggedToday bool
	for _, a := range activities {
		if a.Date == today {
			loggedToday = true
			break
		}
	}

	logged := "No"
	message := "Don't forget to log your activities today!"
	if loggedToday {
		logged = "Yes"
		message = "Great job logging today! Keep it up!"
	}

	params := map[string]any{
		"to_email":            settings.Email,
		"pending_tasks_count": len(pending),
		"pending_tasks":       strings.Join(names, ", "),
		"logged_today":        logged,
		"reminder_message":    message,
	}

	if err := c.send(ctx, settings, params); err != nil {
		c.l.Error("failed to send weekly reminder", "error", err)
		return false
	}
	return true
}

func (c *Client) send(ctx context.Context, settings perftrack.Settings, params map[string]any) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      settings.EmailServiceID,
		TemplateID:     settings.EmailTemplateID,
		UserID:         settings.EmailPublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("emailjs responded %s", resp.Status)
	}
	return nil
}

func formatBreakdown(categories []stats.CategoryTotal) string {
	parts := make([]string, 0, len(categories))
	for _, ct := range categories {
		parts = append(parts, fmt.Sprintf("%s: %.1fh", ct.Category, float64(ct.Minutes)/60))
	}
	return strings.Join(parts, ", ")
}
