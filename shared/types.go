package shared

type ServerConfig struct {
	Sqlite SqliteConfig `mapstructure:"sqlite"`
	Hub    HubConfig    `mapstructure:"hub" validate:"required"`
	Google GoogleConfig `mapstructure:"google"`
}

type SqliteConfig struct {
	// Directory the signup db lives in. Defaults to the config directory
	// when left empty.
	Directory string `mapstructure:"directory"`
}

type HubConfig struct {
	Cron     CronConfig     `mapstructure:"cron" validate:"required"`
	Listener ListenerConfig `mapstructure:"listener" validate:"required"`
}

type CronConfig struct {
	TimeZone string `mapstructure:"timeZone" validate:"required"`
}

type ListenerConfig struct {
	Port int `mapstructure:"port" validate:"required"`
}

type GoogleConfig struct {
	ApplicationCredentials string        `mapstructure:"applicationCredentials"`
	Storage                StorageConfig `mapstructure:"storage"`
}

// StorageConfig controls the periodic signup-db backup. Bucket & schedule
// are only read when EnableSqliteBackupAndSync is true.
type StorageConfig struct {
	Bucket                    string      `mapstructure:"bucket"`
	Prefix                    string      `mapstructure:"prefix"`
	SqliteBackupSchedule      string      `mapstructure:"sqliteBackupSchedule"`
	EnableSqliteBackupAndSync interface{} `mapstructure:"enableSqliteBackupAndSync"`
}
