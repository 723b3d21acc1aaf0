package main

import (
	"context"
	"fmt"
	"os"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anhvtran/perftrack"
	"github.com/anhvtran/perftrack/charmlog"
	"github.com/anhvtran/perftrack/emailjs"
	"github.com/anhvtran/perftrack/reminder"
	"github.com/anhvtran/perftrack/session"
	"github.com/anhvtran/perftrack/sqlite"
)

var logger perftrack.Logger

func main() {
	// conf
	conf := perftrack.LoadConfig()
	f, err := os.OpenFile(conf.LogPath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o666)
	if err != nil {
		panic(err)
	}
	defer f.Close() //nolint:errcheck
	logger = charmlog.NewLogger(charmlog.Options{
		Writer: f,
		Level:  conf.LogLevel,
	})
	logger.Info("loaded config", "config", conf)

	// db
	db, err := sqlite.Open(conf.DatabaseURL)
	if err != nil {
		logger.Error("failed database open", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(sqlite.Migrations); err != nil {
		logger.Error("failed migration", "error", err)
		os.Exit(1)
	}
	defer db.Close() //nolint:errcheck

	trans, dbGetter := txStdLib.NewTransactor(db.DB(), txStdLib.NestedTransactionsSavepoints)

	// store + session
	store := sqlite.NewStore(trans, dbGetter, logger)

	timeout, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	sess, err := session.New(timeout, store, logger)
	cancel()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// reminder scheduler
	rate, err := time.ParseDuration(conf.ReminderRate)
	if err != nil {
		logger.Warn("invalid reminder rate, using 24h", "rate", conf.ReminderRate)
		rate = 24 * time.Hour
	}
	sched := reminder.NewScheduler(reminder.Options{
		Store:    store,
		Notifier: emailjs.NewClient(conf.EmailJSURL, logger),
		Logger:   logger,
		Interval: rate,
		Desktop:  true,
	})
	sched.Start(context.Background())
	defer sched.Stop()

	// start program
	fmt.Println(colorize(colorYellow, logo))
	fmt.Printf("\nEnter \"/h\" for help\n\n")

	userinput := textinput.New()
	userinput.Focus()
	userinput.CharLimit = 280
	userinput.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))

	now := time.Now()
	m := model{
		l:          logger,
		sess:       sess,
		cmdTimeout: 3 * time.Second,
		userinput:  userinput,
		vp:         viewport.New(0, 0),
		view:       viewGrid,
		month:      time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		logger.Error(err.Error())
	}
}
