package env

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/napi"
)

// Context is the process-wide environment registry. The installed
// function table dispatches env handles through it.
type Context struct {
	mu       sync.RWMutex
	envs     map[napi.Env]*Env
	nextEnv  napi.Env
	stopping bool
	canCall  bool

	// StoreCapacity seeds each new environment's handle store.
	StoreCapacity int
}

// NewContext creates an empty registry.
func NewContext() *Context {
	return &Context{
		envs:    make(map[napi.Env]*Env),
		nextEnv: 1,
		canCall: true,
	}
}

var (
	defaultCtx  *Context
	defaultOnce sync.Once
)

// Default returns the process-wide context, creating it on first use.
func Default() *Context {
	defaultOnce.Do(func() {
		defaultCtx = NewContext()
	})
	return defaultCtx
}

// CreateEnv registers a new environment for an add-on.
func (c *Context) CreateEnv(filename string) *Env {
	c.mu.Lock()
	id := c.nextEnv
	c.nextEnv++
	e := newEnv(c, id, filename, c.StoreCapacity)
	c.envs[id] = e
	c.mu.Unlock()
	Logger().Debug("environment created",
		zap.Uint64("env", uint64(id)),
		zap.String("filename", filename))
	return e
}

// Env resolves an environment handle.
func (c *Context) Env(id napi.Env) (*Env, bool) {
	c.mu.RLock()
	e, ok := c.envs[id]
	c.mu.RUnlock()
	return e, ok
}

func (c *Context) remove(id napi.Env) {
	c.mu.Lock()
	delete(c.envs, id)
	c.mu.Unlock()
}

func (c *Context) canCallIntoJS() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.canCall && !c.stopping
}

// SetCanCallIntoJS gates script-running entry points process-wide.
func (c *Context) SetCanCallIntoJS(v bool) {
	c.mu.Lock()
	c.canCall = v
	c.mu.Unlock()
}

// Destroy tears down every environment and stops the context.
func (c *Context) Destroy() {
	c.mu.Lock()
	c.stopping = true
	envs := make([]*Env, 0, len(c.envs))
	for _, e := range c.envs {
		envs = append(envs, e)
	}
	c.mu.Unlock()

	for _, e := range envs {
		e.Teardown()
	}

	c.mu.Lock()
	c.canCall = false
	c.mu.Unlock()
}
