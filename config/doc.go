// Package config carries the runtime's tunables: worker pool size,
// default TSFN queue capacity, handle store sizing, and log verbosity.
// Options load from YAML or start from defaults; zero fields keep their
// defaults either way.
package config
