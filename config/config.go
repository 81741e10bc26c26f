package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/napi-runtime/errors"
)

// Options are the runtime tunables.
type Options struct {
	// AsyncPoolSize is loaded and defaulted but not applied: the runtime
	// runs async work on a pool of dispatch.DefaultPoolSize workers.
	AsyncPoolSize int `yaml:"async_pool_size"`

	// TSFNQueueSize is loaded and defaulted but not applied: thread-safe
	// function queues created with max_queue_size 0 stay unbounded.
	TSFNQueueSize int `yaml:"tsfn_queue_size"`

	// HandleStoreCapacity seeds each environment's handle store.
	HandleStoreCapacity int `yaml:"handle_store_capacity"`

	// LogLevel names a zap level: debug, info, warn, error. The runtime
	// does not read it; its logger is a no-op unless env.SetLogger
	// installs one.
	LogLevel string `yaml:"log_level"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		AsyncPoolSize:       4,
		TSFNQueueSize:       0,
		HandleStoreCapacity: 64,
		LogLevel:            "error",
	}
}

// Load reads options from a YAML file, filling unset fields from
// Default.
func Load(path string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default(), errors.New(errors.PhaseConfig, errors.KindNotFound).
			Detail("read %s", path).
			Cause(err).
			Build()
	}
	return Parse(raw)
}

// Parse decodes YAML bytes into options.
func Parse(raw []byte) (Options, error) {
	opts := Options{}
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return Default(), errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Detail("decode options").
			Cause(err).
			Build()
	}
	return opts.withDefaults(), nil
}

func (o Options) withDefaults() Options {
	d := Default()
	if o.AsyncPoolSize <= 0 {
		o.AsyncPoolSize = d.AsyncPoolSize
	}
	if o.TSFNQueueSize < 0 {
		o.TSFNQueueSize = d.TSFNQueueSize
	}
	if o.HandleStoreCapacity <= 0 {
		o.HandleStoreCapacity = d.HandleStoreCapacity
	}
	if o.LogLevel == "" {
		o.LogLevel = d.LogLevel
	}
	return o
}
