package config

const (
	DefaultHost         = "127.0.0.1"
	DefaultPort         = 8000
	DefaultDatabasePath = "./booktrack.db"
)
