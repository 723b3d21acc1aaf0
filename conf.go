package perftrack

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	LogLevel     string
	LogPath      string
	EmailJSURL   string
	ReminderRate string
}

const (
	DefaultLogLevel     = "WARN"
	DefaultEmailJSURL   = "https://api.emailjs.com"
	DefaultReminderRate = "24h"
)

var (
	userHome, _        = os.UserHomeDir()
	DefaultDatabaseURL = path.Join(userHome, ".perftrack", "perftrack.db")
	DefaultLogPath     = path.Join(userHome, ".perftrack", "perftrack.log")
)

func LoadConfig() Config {
	confFromEnv := Config{
		DatabaseURL:  os.Getenv("PERFTRACK_DB_URL"),
		LogLevel:     os.Getenv("PERFTRACK_LOG_LEVEL"),
		LogPath:      os.Getenv("PERFTRACK_LOG_PATH"),
		EmailJSURL:   os.Getenv("PERFTRACK_EMAILJS_URL"),
		ReminderRate: os.Getenv("PERFTRACK_REMINDER_RATE"),
	}

	if os.Getenv("PERFTRACK_DEV_MODE") != "" {
		fmt.Println("Dev mode is on!")
		confFromEnv.LogLevel = "DEBUG"
		confFromEnv.DatabaseURL = path.Join(os.TempDir(), "perftrack-test.db")
		confFromEnv.LogPath = path.Join(userHome, ".perftrack", "dev.log")
		f, err := os.OpenFile(confFromEnv.DatabaseURL, os.O_CREATE|os.O_TRUNC, 0o744)
		if err != nil {
			panic(err)
		}
		_ = f.Close()
	}

	// load file
	cfgDir, _ := os.UserConfigDir()
	cfgDir = path.Join(cfgDir, "perftrack")
	confFile := path.Join(cfgDir, "perftrack.conf")
	if _, err := os.Stat(confFile); err != nil {
		log.Println("creating default conf file")
		if err := os.MkdirAll(cfgDir, 0o744); err != nil {
			panic(err)
		}
		f, err := os.Create(confFile)
		if err != nil {
			panic(err)
		}
		if _, err := f.WriteString("PERFTRACK_DB_URL=" + DefaultDatabaseURL + "\n"); err != nil {
			panic(err)
		}
		if _, err := f.WriteString("PERFTRACK_LOG_LEVEL=" + DefaultLogLevel + "\n"); err != nil {
			panic(err)
		}
		if _, err := f.WriteString("PERFTRACK_LOG_PATH=" + DefaultLogPath + "\n"); err != nil {
			panic(err)
		}
		if _, err := f.WriteString("PERFTRACK_REMINDER_RATE=" + DefaultReminderRate + "\n"); err != nil {
			panic(err)
		}
		_ = f.Close()
	}
	if err := godotenv.Load(confFile); err != nil {
		panic(err)
	}
	confFromFile := Config{
		DatabaseURL:  os.Getenv("PERFTRACK_DB_URL"),
		LogLevel:     os.Getenv("PERFTRACK_LOG_LEVEL"),
		LogPath:      os.Getenv("PERFTRACK_LOG_PATH"),
		EmailJSURL:   os.Getenv("PERFTRACK_EMAILJS_URL"),
		ReminderRate: os.Getenv("PERFTRACK_REMINDER_RATE"),
	}

	return Config{
		DatabaseURL:  coalesce(confFromEnv.DatabaseURL, confFromFile.DatabaseURL, DefaultDatabaseURL),
		LogLevel:     coalesce(confFromEnv.LogLevel, confFromFile.LogLevel, DefaultLogLevel),
		LogPath:      coalesce(confFromEnv.LogPath, confFromFile.LogPath, DefaultLogPath),
		EmailJSURL:   coalesce(confFromEnv.EmailJSURL, confFromFile.EmailJSURL, DefaultEmailJSURL),
		ReminderRate: coalesce(confFromEnv.ReminderRate, confFromFile.ReminderRate, DefaultReminderRate),
	}
}

func coalesce(args ...string) string {
	for _, s := range args {
		if s != "" {
			return s
		}
	}
	return ""
}
