/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the command line tool's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"dirpx.dev/intiter/code"
	"dirpx.dev/intiter/mapper"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// Targets lists the accepted integer targets in canonical form.
var Targets = []string{"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64"}

// Sources lists the accepted element kinds.
var Sources = []string{"runes", "bytes"}

// Config is the tool's configuration.
type Config struct {
	// Target is the integer type values are parsed into (int8..uint64, or
	// the short forms i8..u64).
	Target string `yaml:"target"`

	// Source selects whether input is fed as runes or as bytes.
	Source string `yaml:"source"`

	// Separator, when set, is a single character dropped from the input
	// before parsing (for example "_" in "1_000").
	Separator string `yaml:"separator,omitempty"`

	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level"`

	Mapper MapperConfig `yaml:"mapper"`
}

// MapperConfig adjusts the status mapper used by the explain command.
type MapperConfig struct {
	Defaults  []Rule `yaml:"defaults,omitempty"`
	Overrides []Rule `yaml:"overrides,omitempty"`
	Prefixes  []Rule `yaml:"prefixes,omitempty"`
}

// Rule sets the HTTP and/or gRPC status for a code. Prefix is used only in
// MapperConfig.Prefixes. GRPC is a canonical name such as "OUT_OF_RANGE".
type Rule struct {
	Code   string `yaml:"code"`
	Prefix string `yaml:"prefix,omitempty"`
	HTTP   int    `yaml:"http,omitempty"`
	GRPC   string `yaml:"grpc,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Target:   "int64",
		Source:   "runes",
		LogLevel: "info",
	}
}

// Load reads path on top of DefaultConfig, applies environment overrides
// and validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("INTITER_TARGET"); v != "" {
		c.Target = v
	}
	if v := os.Getenv("INTITER_SOURCE"); v != "" {
		c.Source = v
	}
	if v := os.Getenv("INTITER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate normalizes Target and Source and checks every field.
func (c *Config) Validate() error {
	t, err := NormalizeTarget(c.Target)
	if err != nil {
		return err
	}
	c.Target = t

	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	if !slices.Contains(Sources, c.Source) {
		return fmt.Errorf("config: unknown source %q (want one of %s)", c.Source, strings.Join(Sources, ", "))
	}

	if c.Separator != "" {
		r, size := utf8.DecodeRuneInString(c.Separator)
		if size != len(c.Separator) {
			return fmt.Errorf("config: separator %q must be a single character", c.Separator)
		}
		if c.Source == "bytes" && r >= utf8.RuneSelf {
			return fmt.Errorf("config: separator %q must be ASCII for byte input", c.Separator)
		}
		if r >= '0' && r <= '9' || r == '+' || r == '-' {
			return fmt.Errorf("config: separator %q would hide digits or signs", c.Separator)
		}
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	_, err = c.Mapper.Options()
	return err
}

// NormalizeTarget maps "i8".."u64" and "int8".."uint64" (any case) to
// the canonical target name.
func NormalizeTarget(s string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(t, "i") && !strings.HasPrefix(t, "int"):
		t = "int" + t[1:]
	case strings.HasPrefix(t, "u") && !strings.HasPrefix(t, "uint"):
		t = "uint" + t[1:]
	}
	if !slices.Contains(Targets, t) {
		return "", fmt.Errorf("config: unknown target %q (want one of %s)", s, strings.Join(Targets, ", "))
	}
	return t, nil
}

// Options converts the rules into mapper options.
func (m MapperConfig) Options() ([]mapper.Option, error) {
	var opts []mapper.Option
	add := func(section string, rules []Rule, httpOpt func(code.Code, Rule) mapper.Option, grpcOpt func(code.Code, Rule, codes.Code) mapper.Option) error {
		for i, r := range rules {
			c, err := code.Parse(r.Code)
			if err != nil || c == code.Empty {
				return fmt.Errorf("config: mapper.%s[%d]: invalid code %q", section, i, r.Code)
			}
			if r.HTTP == 0 && r.GRPC == "" {
				return fmt.Errorf("config: mapper.%s[%d]: neither http nor grpc status set", section, i)
			}
			if r.HTTP != 0 {
				if r.HTTP < 100 || r.HTTP > 599 {
					return fmt.Errorf("config: mapper.%s[%d]: http status %d out of range", section, i, r.HTTP)
				}
				opts = append(opts, httpOpt(c, r))
			}
			if r.GRPC != "" {
				g, err := ParseGRPCCode(r.GRPC)
				if err != nil {
					return fmt.Errorf("config: mapper.%s[%d]: %w", section, i, err)
				}
				opts = append(opts, grpcOpt(c, r, g))
			}
		}
		return nil
	}

	err := add("defaults", m.Defaults,
		func(c code.Code, r Rule) mapper.Option { return mapper.WithHTTPDefault(c, r.HTTP) },
		func(c code.Code, _ Rule, g codes.Code) mapper.Option { return mapper.WithGRPCDefault(c, g) })
	if err != nil {
		return nil, err
	}
	err = add("overrides", m.Overrides,
		func(c code.Code, r Rule) mapper.Option { return mapper.WithHTTPOverride(c, r.HTTP) },
		func(c code.Code, _ Rule, g codes.Code) mapper.Option { return mapper.WithGRPCOverride(c, g) })
	if err != nil {
		return nil, err
	}
	err = add("prefixes", m.Prefixes,
		func(c code.Code, r Rule) mapper.Option { return mapper.WithHTTPPrefix(c, r.Prefix, r.HTTP) },
		func(c code.Code, r Rule, g codes.Code) mapper.Option { return mapper.WithGRPCPrefix(c, r.Prefix, g) })
	if err != nil {
		return nil, err
	}

	// Building once surfaces malformed prefixes at load time.
	if _, err := mapper.New(opts...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return opts, nil
}

// ParseGRPCCode accepts canonical names ("OUT_OF_RANGE"), Go names
// ("OutOfRange") and numbers.
func ParseGRPCCode(s string) (codes.Code, error) {
	in := strings.TrimSpace(s)
	raw := strconv.Quote(canonicalGRPCName(in))
	if n, err := strconv.ParseUint(in, 10, 32); err == nil {
		raw = strconv.FormatUint(n, 10)
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(raw)); err != nil {
		return 0, fmt.Errorf("unknown grpc code %q", s)
	}
	return c, nil
}

// canonicalGRPCName turns "OutOfRange" into "OUT_OF_RANGE". Names with an
// underscore or without lower case letters are only upper-cased.
func canonicalGRPCName(s string) string {
	if strings.Contains(s, "_") || strings.ToUpper(s) == s {
		s = strings.ToUpper(s)
	} else {
		var b strings.Builder
		for i, r := range s {
			if i > 0 && r >= 'A' && r <= 'Z' {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		}
		s = strings.ToUpper(b.String())
	}
	if s == "CANCELED" {
		return "CANCELLED"
	}
	return s
}
