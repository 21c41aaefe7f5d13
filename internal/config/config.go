// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings shared by the commands from the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSeed seeds every experiment unless configured otherwise.
const DefaultSeed = 123

// Config holds the settings read by Load.
type Config struct {
	// Seed is the base random seed (CAP02_SEED).
	Seed uint64

	// FiguresDir receives charts (CAP02_FIGURES).
	FiguresDir string

	// ResultsDir receives CSV and XLSX exports (CAP02_RESULTS).
	ResultsDir string

	// LogLevel is the minimum level logged (CAP02_LOG_LEVEL).
	LogLevel slog.Level

	// Workers bounds the parallel replications (CAP02_WORKERS).
	Workers int
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Seed:       DefaultSeed,
		FiguresDir: "figuras",
		ResultsDir: "resultados",
		LogLevel:   slog.LevelInfo,
		Workers:    1,
	}
}

// Load reads envFile, if it exists, and then the process environment.
// Variables already set in the environment take precedence over the
// file. An empty envFile skips the file.
func Load(envFile string) (*Config, error) {
	file := map[string]string{}
	if envFile != "" {
		var err error
		file, err = godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}
	return load(func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return file[key]
	})
}

func load(getenv func(string) string) (*Config, error) {
	c := Default()
	if v := getenv("CAP02_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("CAP02_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := getenv("CAP02_FIGURES"); v != "" {
		c.FiguresDir = v
	}
	if v := getenv("CAP02_RESULTS"); v != "" {
		c.ResultsDir = v
	}
	if v := getenv("CAP02_LOG_LEVEL"); v != "" {
		if err := c.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return nil, fmt.Errorf("CAP02_LOG_LEVEL: %w", err)
		}
	}
	if v := getenv("CAP02_WORKERS"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("CAP02_WORKERS: %w", err)
		}
		if w < 1 {
			return nil, fmt.Errorf("CAP02_WORKERS: must be >= 1, got %d", w)
		}
		c.Workers = w
	}
	return c, nil
}
