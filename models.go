package perftrack

import (
	"time"
)

type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt,omitzero"`
	// Goal is the target count of completion-days per month. Zero means
	// unset; display falls back to the number of days in the month.
	Goal int `json:"goal,omitempty"`
}

type ActivityLog struct {
	ID     string `json:"id"`
	TaskID string `json:"taskId"`
	// TaskName and Category are captured from the task at creation time
	// and not kept in sync with later task edits.
	TaskName string `json:"taskName"`
	Category string `json:"category"`
	Date     Date   `json:"date"`
	Duration int    `json:"duration"` // minutes
	Notes    string `json:"notes,omitempty"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

type Settings struct {
	Email                 string `json:"email"`
	EmailServiceID        string `json:"emailServiceId,omitempty"`
	EmailTemplateID       string `json:"emailTemplateId,omitempty"`
	EmailPublicKey        string `json:"emailPublicKey,omitempty"`
	WeeklyReminderEnabled bool   `json:"weeklyReminderEnabled"`
	WeeklyReportEnabled   bool   `json:"weeklyReportEnabled"`
}

// Configured reports whether all four fields needed to send email are set.
func (s Settings) Configured() bool {
	return s.Email != "" && s.EmailServiceID != "" && s.EmailTemplateID != "" && s.EmailPublicKey != ""
}

// UnknownCategoryColor is used for activities and tasks whose category no
// longer exists. Deleting a category leaves references dangling.
const UnknownCategoryColor = "#9ca3af"

// DefaultCategories is the seed written the first time the categories slot
// is read empty.
func DefaultCategories() []Category {
	now := time.Now()
	return []Category{
		{ID: "1", Name: "Gym", Color: "#ef4444", CreatedAt: now},
		{ID: "2", Name: "Office Task", Color: "#3b82f6", CreatedAt: now},
		{ID: "3", Name: "Personal Task", Color: "#10b981", CreatedAt: now},
		{ID: "4", Name: "Learning", Color: "#f59e0b", CreatedAt: now},
		{ID: "5", Name: "Reading Book", Color: "#8b5cf6", CreatedAt: now},
	}
}
