// Package inject applies loaded env file entries to an environment.
//
// The environment is reached only through the Env capability, so the same
// logic serves the current process (OS) and a child process being prepared
// (Map).
package inject

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/DevExpGBB/envload/internal/envfile"
)

// ErrInject is returned when the environment rejects a variable.
var ErrInject = errors.New("inject: cannot set variable")

// Env is a mutable environment variable table.
type Env interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// Source supplies entries in the order they should be applied.
type Source interface {
	Entries() []envfile.Entry
}

// All applies every entry from src to env in order. When overwrite is false,
// variables already present in env are left untouched. All stops at the first
// failure; variables set before it are not rolled back.
func All(src Source, env Env, overwrite bool) error {
	for _, e := range src.Entries() {
		if !overwrite {
			if _, exists := env.LookupEnv(e.Key); exists {
				continue
			}
		}
		if err := env.Setenv(e.Key, e.Value); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInject, e.Key, err)
		}
	}
	return nil
}

// OS is the environment of the current process.
type OS struct{}

// LookupEnv reports the value of key in the process environment.
func (OS) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
// Setenv sets key in the process environment.
func (OS) Setenv(key, value string) error { return os.Setenv(key, value) }

// Map is an in-memory environment, typically seeded from os.Environ and
// handed to a child process.
type Map map[string]string

// FromEnviron builds a Map from KEY=VALUE pairs such as os.Environ returns.
// Later duplicates replace earlier ones, as exec does.
func FromEnviron(environ []string) Map {
	m := make(Map, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			m[kv[:i]] = kv[i+1:]
		}
	}
	return m
}

// LookupEnv reports the value of key in the map.
func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Setenv sets key in the map. Keys that are empty or contain '=' or NUL are rejected.
func (m Map) Setenv(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return fmt.Errorf("invalid key %q", key)
	}
	m[key] = value
	return nil
}

// Environ returns the map as sorted KEY=VALUE pairs.
func (m Map) Environ() []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
