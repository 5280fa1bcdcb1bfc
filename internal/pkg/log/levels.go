/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// Level is a log level.
type Level int

// Log levels.
const (
	DEBUG   = Level(zapcore.DebugLevel)
	INFO    = Level(zapcore.InfoLevel)
	WARNING = Level(zapcore.WarnLevel)
	ERROR   = Level(zapcore.ErrorLevel)
	PANIC   = Level(zapcore.PanicLevel)
	FATAL   = Level(zapcore.FatalLevel)
)

const defaultModule = ""

var registry = &levelRegistry{levels: map[string]Level{}} //nolint:gochecknoglobals

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARN"
	case ERROR:
		return "ERROR"
	case PANIC:
		return "PANIC"
	case FATAL:
		return "FATAL"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARNING, nil
	case "ERROR":
		return ERROR, nil
	case "PANIC":
		return PANIC, nil
	case "FATAL":
		return FATAL, nil
	default:
		return ERROR, fmt.Errorf("logger: invalid log level %q", level)
	}
}

// SetLevel sets the level of one module.
func SetLevel(module string, level Level) {
	registry.set(module, level)
}

// SetDefaultLevel sets the level used by modules without their own level.
func SetDefaultLevel(level Level) {
	registry.set(defaultModule, level)
}

// GetLevel returns the effective level of a module.
func GetLevel(module string) Level {
	return registry.get(module)
}

// SetSpec applies a spec of the form
//
//	module1=level1:module2=level2:defaultLevel
//
// The default part is optional and defaults to INFO.
func SetSpec(spec string) error {
	def := INFO
	hasDefault := false
	modules := map[string]Level{}

	for _, part := range strings.Split(spec, ":") {
		module, levelName, isModule := strings.Cut(part, "=")
		if !isModule {
			levelName = module
		}

		level, err := ParseLevel(levelName)
		if err != nil {
			return err
		}

		if isModule {
			modules[module] = level

			continue
		}

		if hasDefault {
			return errors.New("multiple default values found")
		}

		def, hasDefault = level, true
	}

	registry.set(defaultModule, def)

	for module, level := range modules {
		registry.set(module, level)
	}

	return nil
}

// GetSpec returns the current levels in SetSpec format, modules sorted by name.
func GetSpec() string {
	all := registry.all()

	var (
		parts []string
		def   string
	)

	for module, level := range all {
		if module == defaultModule {
			def = level.String()

			continue
		}

		parts = append(parts, module+"="+level.String())
	}

	sort.Strings(parts)

	return strings.Join(append(parts, def), ":")
}

type levelRegistry struct {
	mu     sync.RWMutex
	levels map[string]Level
}

func (r *levelRegistry) get(module string) Level {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if level, ok := r.levels[module]; ok {
		return level
	}

	if level, ok := r.levels[defaultModule]; ok {
		return level
	}

	return INFO
}

func (r *levelRegistry) set(module string, level Level) {
	r.mu.Lock()
	r.levels[module] = level
	r.mu.Unlock()
}

func (r *levelRegistry) all() map[string]Level {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Level, len(r.levels))
	for k, v := range r.levels {
		out[k] = v
	}

	return out
}

func (r *levelRegistry) enabled(module string, level Level) bool {
	return level >= r.get(module)
}
