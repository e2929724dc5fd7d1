package main

import (
	"io"
	"os"
	"strings"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Environ []string // "KEY=value" pairs, as returned by os.Environ
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ(),
	}
}

// vars returns Environ as a map. Later duplicates win, as with os.Getenv.
func (e *Environment) vars() map[string]string {
	m := make(map[string]string, len(e.Environ))
	for _, kv := range e.Environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			m[k] = v
		}
	}
	return m
}
