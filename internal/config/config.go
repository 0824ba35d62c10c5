package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		GoogleBooks
		Global
		UI
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	GoogleBooks struct {
		APIKey string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	UI struct {
		FrontendPath string
		StaticPath   string
	}
)

func NewConfig() *Config {
	// A .env file in the working directory takes effect before the
	// environment is read; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("google_books_api_key", "")
	v.SetDefault("frontend_path", "./frontend")
	v.SetDefault("static_path", "./frontend/static")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		GoogleBooks: GoogleBooks{
			APIKey: v.GetString("GOOGLE_BOOKS_API_KEY"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		UI: UI{
			FrontendPath: v.GetString("FRONTEND_PATH"),
			StaticPath:   v.GetString("STATIC_PATH"),
		},
	}
}
