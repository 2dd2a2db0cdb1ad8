// Package env provides a small seam over process environment variables so
// that backend probing and resource-directory resolution can be driven by a
// fixed map in tests.
package env

import "os"

// Env is a read-only view of environment variables.
type Env interface {
	// Get returns the value of the variable, or "" when unset.
	Get(key string) string
	// Lookup returns the value and whether the variable is set.
	Lookup(key string) (string, bool)
	// Env returns all variables in "key=value" form.
	Env() []string
}

// New returns an [Env] backed by the process environment.
func New() Env {
	return &osEnv{}
}

type osEnv struct{}

func (osEnv) Get(key string) string {
	return os.Getenv(key)
}

func (osEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnv) Env() []string {
	return os.Environ()
}

// NewFromMap returns an [Env] backed by the given map.
func NewFromMap(m map[string]string) Env {
	return &mapEnv{m: m}
}

type mapEnv struct {
	m map[string]string
}

func (e *mapEnv) Get(key string) string {
	return e.m[key]
}

func (e *mapEnv) Lookup(key string) (string, bool) {
	v, ok := e.m[key]
	return v, ok
}

func (e *mapEnv) Env() []string {
	if len(e.m) == 0 {
		return nil
	}
	env := make([]string, 0, len(e.m))
	for k, v := range e.m {
		env = append(env, k+"="+v)
	}
	return env
}
