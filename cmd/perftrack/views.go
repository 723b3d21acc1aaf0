package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/anhvtran/perftrack"
	"github.com/anhvtran/perftrack/habit"
	"github.com/anhvtran/perftrack/stats"
)

func (m model) renderView() string {
	switch m.view {
	case viewStats:
		return m.renderStats()
	case viewTasks:
		return m.renderTasks()
	case viewLog:
		return m.renderLog()
	default:
		return m.renderGrid()
	}
}

func (m model) renderGrid() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("HABIT TRACKER - " + m.month.Format("January 2006")))
	sb.WriteString("\n\n")

	tasks := m.displayTasks()
	tracker := m.sess.Tracker()
	weeks := habit.MonthWeeks(m.month.Year(), m.month.Month())
	days := habit.MonthDays(m.month.Year(), m.month.Month())
	today := perftrack.Today()

	// header rows
	const nameWidth = 20
	var weekRow, dayRow strings.Builder
	weekRow.WriteString(strings.Repeat(" ", nameWidth+6))
	dayRow.WriteString(fmt.Sprintf("%-*s GOAL  ", nameWidth, "DAILY HABITS"))
	for _, w := range weeks {
		label := fmt.Sprintf("W%d", w.Number)
		width := len(w.Days)*3 - 1
		weekRow.WriteString(fmt.Sprintf("%-*s ", width, label))
		for _, d := range w.Days {
			cell := fmt.Sprintf("%2s", string(d)[8:])
			if d == today {
				cell = todayStyle.Render(cell)
			}
			dayRow.WriteString(cell + " ")
		}
	}
	sb.WriteString(weekRow.String())
	sb.WriteRune('\n')
	sb.WriteString(dayRow.String())
	sb.WriteRune('\n')

	if len(tasks) == 0 {
		sb.WriteString(faintStyle.Render("\nNo tasks yet. /t <name> to start tracking!\n"))
		return sb.String()
	}

	for _, t := range tasks {
		goal := t.Goal
		if goal == 0 {
			goal = len(days)
		}
		sb.WriteString(fmt.Sprintf("%-*s %4d  ", nameWidth, truncate(t.Name, nameWidth), goal))
		for _, d := range days {
			if tracker.IsCompleted(t.ID, d) {
				sb.WriteString(doneStyle.Render(" ✓"))
				sb.WriteRune(' ')
			} else {
				sb.WriteString(faintStyle.Render(" ·"))
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}

	// weekly progress
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("WEEKLY PROGRESS"))
	sb.WriteRune('\n')
	for _, wp := range tracker.WeeklyProgress(tasks, weeks) {
		sb.WriteString(fmt.Sprintf(
			"WEEK %d  %3d/%-3d  %3d%%  %s\n",
			wp.Week.Number, wp.Completed, wp.Total, wp.Percentage, bar(wp.Percentage, 20),
		))
	}

	// monthly overview
	mp := tracker.MonthlyProgress(tasks, m.month.Year(), m.month.Month())
	sb.WriteString(fmt.Sprintf(
		"\nMONTH   %3d/%-3d  COMPL %d%%  LEFT %d%%\n",
		mp.Completed, mp.Total, mp.Percentage, 100-mp.Percentage,
	))

	// per-task progress
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("OVERALL PROGRESS"))
	sb.WriteRune('\n')
	for _, tp := range tracker.TaskProgressFor(tasks, m.month.Year(), m.month.Month()) {
		sb.WriteString(fmt.Sprintf(
			"%-*s COMPLETED %2d LEFT %2d  %3d%% %s\n",
			nameWidth, truncate(tp.Task.Name, nameWidth), tp.Completed, tp.Left, tp.Percentage, bar(tp.Percentage, 20),
		))
	}

	return sb.String()
}

func (m model) renderStats() string {
	now := time.Now()
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("PERFORMANCE DASHBOARD"))
	sb.WriteString("\n\n")

	sb.WriteString(renderSummary("TODAY", m.sess.DailyStats(now)))
	weekly := m.sess.WeeklyStats(now)
	sb.WriteString(renderSummary("THIS WEEK", weekly.Summary))
	sb.WriteString(renderSummary("THIS MONTH", m.sess.MonthlyStats(now)))
	sb.WriteString(renderSummary("THIS QUARTER", m.sess.QuarterlyStats(now)))

	sb.WriteString(fmt.Sprintf("\nTASK COMPLETION RATE: %d%%\n", m.sess.CompletionRate()))

	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("DAILY BREAKDOWN (THIS WEEK)"))
	sb.WriteRune('\n')
	for _, day := range weekly.Days {
		sb.WriteString(fmt.Sprintf(
			"%s  %5.1fh  %2d activities\n",
			day.Date, day.TotalHours, day.ActivityCount,
		))
	}

	tracker := m.sess.Tracker()
	tasks := m.sess.Tasks()
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("30-DAY COMPLETION TREND"))
	sb.WriteRune('\n')
	for _, p := range tracker.Trend(tasks, now, 30) {
		sb.WriteString(fmt.Sprintf("%s %3d%% %s\n", p.Date, p.Percentage, bar(p.Percentage, 20)))
	}

	top := habit.TopTasks(tracker.TaskProgressFor(tasks, now.Year(), now.Month()))
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("TOP 10 DAILY HABITS"))
	sb.WriteRune('\n')
	if len(top) == 0 {
		sb.WriteString(faintStyle.Render("No tasks yet\n"))
	}
	for i, tp := range top {
		sb.WriteString(fmt.Sprintf("%2d. %-24s %d\n", i+1, truncate(tp.Task.Name, 24), tp.Completed))
	}

	return sb.String()
}

func renderSummary(label string, s stats.Summary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"%-13s %6.1fh  %3d activities",
		label, s.TotalHours, s.ActivityCount,
	))
	if len(s.Categories) > 0 {
		var parts []string
		for _, ct := range s.Categories {
			parts = append(parts, fmt.Sprintf("%s %.1fh", ct.Category, float64(ct.Minutes)/60))
		}
		sb.WriteString("  (" + strings.Join(parts, ", ") + ")")
	}
	sb.WriteRune('\n')
	return sb.String()
}

func (m model) renderTasks() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("TASKS"))
	sb.WriteString("\n\n")

	tasks := m.displayTasks()
	if len(tasks) == 0 {
		sb.WriteString(faintStyle.Render("No tasks yet. /t <name> to add one.\n"))
		return sb.String()
	}
	for i, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = doneStyle.Render("[x]")
		}
		sb.WriteString(fmt.Sprintf(
			"%2d. %s %-24s %-10s %s\n",
			i+1, mark, truncate(t.Name, 24), "!"+t.Priority.String(), faintStyle.Render("@"+t.Category),
		))
	}

	sb.WriteString("\nCATEGORIES: ")
	var names []string
	for _, c := range m.sess.Categories() {
		names = append(names, c.Name)
	}
	sb.WriteString(faintStyle.Render(strings.Join(names, ", ")))
	sb.WriteRune('\n')

	settings := m.sess.Settings()
	sb.WriteString(fmt.Sprintf(
		"\nEMAIL: %s  REMINDER: %v  REPORT: %v\n",
		settings.Email, settings.WeeklyReminderEnabled, settings.WeeklyReportEnabled,
	))

	return sb.String()
}

func (m model) renderLog() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("ACTIVITY LOG"))
	sb.WriteString("\n\n")

	activities := m.displayActivities()
	if len(activities) == 0 {
		sb.WriteString(faintStyle.Render("No activities yet. /l <n> <minutes> to log time.\n"))
		return sb.String()
	}
	for i, a := range activities {
		note := a.Notes
		if note != "" {
			note = faintStyle.Render(" - " + note)
		}
		sb.WriteString(fmt.Sprintf(
			"%3d. %s  %-24s %4dm%s\n",
			i+1, a.Date, truncate(a.TaskName, 24), a.Duration, note,
		))
	}

	return sb.String()
}
