package logger

type Config struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"filename"`
	MaxSize    int    `yaml:"maxsize"`
	MaxAge     int    `yaml:"maxage"`
	MaxBackups int    `yaml:"maxbackups"`
	Compress   bool   `yaml:"compress"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:      "INFO",
		FileName:   "./logs/dlp.log",
		MaxSize:    100,
		MaxAge:     30,
		MaxBackups: 10,
		Compress:   true,
	}
}
