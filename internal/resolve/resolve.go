// Package resolve looks a value up from multiple sources.
//
// Priority order:
//  1. Explicit flag value
//  2. The loaded env file (first matching key)
//  3. Environment variables
//  4. Interactive masked prompt (terminal)
package resolve

import (
	"errors"
	"fmt"
	"os"

	"github.com/DevExpGBB/envload/internal/prompt"
)

// ErrNotFound is returned when no source provides a value.
var ErrNotFound = errors.New("value not found")

// Getter is satisfied by *envfile.Store.
type Getter interface {
	Get(key string) (string, bool)
}

// Opts controls which sources are consulted.
type Opts struct {
	FlagValue   string
	Store       Getter   // nil skips the env file
	Keys        []string // keys tried against Store, in order
	EnvVarNames []string // process variables tried, in order
	DisplayName string   // prompt label
	Prompt      bool     // ask on the terminal as a last resort
}

// Result contains the resolved value and its source.
type Result struct {
	Value  string
	Source string // "flag", "envfile", "environment", "prompt"
	Key    string // key or variable name that matched; empty for flag and prompt
}

// Resolve walks the priority chain and returns the first hit.
// A key declared in the env file counts even when its value is empty.
func Resolve(opts Opts) (*Result, error) {
	// 1. Explicit flag
	if opts.FlagValue != "" {
		return &Result{Value: opts.FlagValue, Source: "flag"}, nil
	}

	// 2. Env file
	if opts.Store != nil {
		for _, key := range opts.Keys {
			if v, ok := opts.Store.Get(key); ok {
				return &Result{Value: v, Source: "envfile", Key: key}, nil
			}
		}
	}

	// 3. Environment variables
	for _, name := range opts.EnvVarNames {
		if v, ok := os.LookupEnv(name); ok {
			return &Result{Value: v, Source: "environment", Key: name}, nil
		}
	}

	if !opts.Prompt {
		return nil, fmt.Errorf("%s: %w", opts.DisplayName, ErrNotFound)
	}

	// 4. Interactive masked prompt
	if !prompt.IsTerminal() {
		return nil, fmt.Errorf("%s: %w and stdin is not a terminal.\n"+
			"Provide it via flag, env file, or environment variable", opts.DisplayName, ErrNotFound)
	}
	v := prompt.ReadSecret(opts.DisplayName)
	if v == "" {
		return nil, fmt.Errorf("%s: no value provided", opts.DisplayName)
	}
	return &Result{Value: v, Source: "prompt"}, nil
}
