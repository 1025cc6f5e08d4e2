package store

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Remote drivers understood by OpenRemote.
const (
	DriverNone     = "none"
	DriverRedis    = "redis"
	DriverS3       = "s3"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the resolved configuration of the local cache and remote record.
type Config struct {
	Path     string        `mapstructure:"path"`
	Key      string        `mapstructure:"key"`
	Debounce time.Duration `mapstructure:"debounce"`
	Timezone string        `mapstructure:"timezone"`
	Remote   RemoteConfig  `mapstructure:"remote"`
}

// RemoteConfig selects and addresses the shared remote record.
type RemoteConfig struct {
	Driver     string   `mapstructure:"driver"`
	URL        string   `mapstructure:"url"`
	Collection string   `mapstructure:"collection"`
	Record     string   `mapstructure:"record"`
	S3         S3Config `mapstructure:"s3"`
}

// S3Config holds the object store credentials for the s3 driver.
type S3Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Secure    bool   `mapstructure:"secure"`
}

// DefaultConfig is what LoadConfig returns when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Path:     "~/.diary",
		Key:      "diary:data:v1",
		Debounce: 150 * time.Millisecond,
		Timezone: "Local",
		Remote: RemoteConfig{
			Driver:     DriverNone,
			Collection: "diary",
			Record:     "default",
			S3:         S3Config{Secure: true},
		},
	}
}

// LoadConfig reads .diary.yaml from $DIARY_CONFIG_PATH or the working
// directory, with DIARY_* environment overrides (DIARY_REMOTE_DRIVER, ...).
func LoadConfig() (*Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("path", def.Path)
	v.SetDefault("key", def.Key)
	v.SetDefault("debounce", def.Debounce)
	v.SetDefault("timezone", def.Timezone)
	v.SetDefault("remote.driver", def.Remote.Driver)
	v.SetDefault("remote.url", "")
	v.SetDefault("remote.collection", def.Remote.Collection)
	v.SetDefault("remote.record", def.Remote.Record)
	v.SetDefault("remote.s3.endpoint", "")
	v.SetDefault("remote.s3.access_key", "")
	v.SetDefault("remote.s3.secret_key", "")
	v.SetDefault("remote.s3.secure", def.Remote.S3.Secure)

	v.SetConfigName(".diary") // .yaml is implicit
	v.SetEnvPrefix("DIARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the configuration for values the stores cannot use.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Key, validation.Required),
		validation.Field(&c.Debounce, validation.Min(time.Duration(0))),
		validation.Field(&c.Timezone, validation.By(validTimezone)),
	); err != nil {
		return err
	}
	return c.Remote.Validate()
}

// Validate checks that the driver is known and has what it needs.
func (r RemoteConfig) Validate() error {
	driver := r.Driver
	return validation.ValidateStruct(&r,
		validation.Field(&r.Driver, validation.In(DriverNone, DriverRedis, DriverS3, DriverPostgres, DriverSQLite)),
		validation.Field(&r.URL, validation.When(driver == DriverRedis || driver == DriverPostgres || driver == DriverSQLite, validation.Required)),
		validation.Field(&r.Collection, validation.Required, validation.Match(identifier)),
		validation.Field(&r.Record, validation.Required),
		validation.Field(&r.S3, validation.When(driver == DriverS3, validation.By(func(any) error {
			return validation.ValidateStruct(&r.S3,
				validation.Field(&r.S3.Endpoint, validation.Required),
			)
		}))),
	)
}

func validTimezone(value any) error {
	name, _ := value.(string)
	if name == "" {
		return nil
	}
	_, err := time.LoadLocation(name)
	return err
}

// BasePath is the local cache directory with ~ expanded.
func (c *Config) BasePath() string {
	path, err := homedir.Expand(c.Path)
	if err != nil {
		return c.Path
	}
	return path
}

// Location is the zone used to display times. Export and the CLI use it;
// date keys are always UTC.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
