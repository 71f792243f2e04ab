package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type GeneratorConfig struct {
	MaxBurst int
	Seed     int64
}

type TracingConfig struct {
	Enabled bool
	Output  string
}

type SchedulerConfig struct {
	Port          int
	DefaultPolicy string
	Verbose       bool
	Generator     GeneratorConfig
	Tracing       TracingConfig
}

var once sync.Once
var config *SchedulerConfig

// ConfigPath is where GetSchedulerConfig looks for config.yaml.
var ConfigPath = "./"

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		v := viper.New()
		setDefaults(v)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigPath)
		v.SetEnvPrefix("scheduler")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
		}
		config = load(v)
	})

	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.default_policy", "fcfs")
	v.SetDefault("scheduler.verbose", false)
	v.SetDefault("scheduler.generator.max_burst", 10)
	v.SetDefault("scheduler.generator.seed", 0)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output", "")
}

func load(v *viper.Viper) *SchedulerConfig {
	return &SchedulerConfig{
		Port:          v.GetInt("port"),
		DefaultPolicy: v.GetString("scheduler.default_policy"),
		Verbose:       v.GetBool("scheduler.verbose"),
		Generator: GeneratorConfig{
			MaxBurst: v.GetInt("scheduler.generator.max_burst"),
			Seed:     v.GetInt64("scheduler.generator.seed"),
		},
		Tracing: TracingConfig{
			Enabled: v.GetBool("tracing.enabled"),
			Output:  v.GetString("tracing.output"),
		},
	}
}
