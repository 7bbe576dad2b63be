package config

import "github.com/spf13/viper"

// Config holds the runtime configuration read from configs/app.env, with
// process environment variables taking precedence. CRS identifiers and
// coordinate field names here are deployment defaults only; every
// conversion accepts explicit values.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	UploadDir     string `mapstructure:"UPLOAD_DIR"`
	OutputDir     string `mapstructure:"OUTPUT_DIR"`
	MaxUploadMB   int64  `mapstructure:"MAX_UPLOAD_MB"`
	SourceCRS     string `mapstructure:"SOURCE_CRS"`
	TargetCRS     string `mapstructure:"TARGET_CRS"`
	XField        string `mapstructure:"X_FIELD"`
	YField        string `mapstructure:"Y_FIELD"`
	ValidateRange bool   `mapstructure:"VALIDATE_RANGE"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads app.env from the given directory and unmarshals it,
// letting matching environment variables override file values.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}
