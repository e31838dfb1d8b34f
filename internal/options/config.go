package options

import (
	"fmt"
	"maps"
)

// Config is a snapshot of option values. Keys without a written value
// read as their registry default. A Config is not safe for concurrent use.
type Config struct {
	values map[Key]Value
}

// New returns an empty Config; every key reads as its default.
func New() *Config {
	return &Config{values: make(map[Key]Value)}
}

// Defaults returns a Config with every registry default written out.
func Defaults() *Config {
	c := New()
	for _, d := range registry {
		c.values[d.Key] = d.Default
	}
	return c
}

// Clone returns an independent copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return New()
	}
	return &Config{values: maps.Clone(c.values)}
}

// Get returns the value of key, falling back to its default.
// A nil Config reads as all defaults.
func (c *Config) Get(key Key) Value {
	if c != nil {
		if v, ok := c.values[key]; ok && v != nil {
			return v
		}
	}
	return registry[key].Default
}

// Text returns the string form of key's value.
func (c *Config) Text(key Key) string {
	return c.Get(key).String()
}

// ProcessingMode returns the plugin processing mode.
func (c *Config) ProcessingMode() ProcessingMode {
	if m, ok := c.Get(PluginProcessingMode).(ProcessingMode); ok {
		return m
	}
	return ProcessingDefault
}

// Apply validates raw for the option called name and, if accepted,
// overwrites the current value. On error c is left unchanged; the error
// matches ErrUnknownOption or ErrInvalidOptionValue.
func (c *Config) Apply(name, raw string) error {
	key, v, err := Parse(name, raw)
	if err != nil {
		return err
	}
	if Describe(key).Kind == KindRootName {
		if other, taken := c.rootOwner(string(v.(Text)), key); taken {
			return &ValueError{
				Option: name,
				Value:  raw,
				Reason: fmt.Sprintf("root already used by %s", other),
			}
		}
	}
	c.set(key, v)
	return nil
}

// Put writes v without validation. Use ValidateOptions to check a
// Config assembled this way.
func (c *Config) Put(key Key, v Value) {
	c.set(key, v)
}

func (c *Config) set(key Key, v Value) {
	if c.values == nil {
		c.values = make(map[Key]Value)
	}
	c.values[key] = v
}

// Names returns the current values by option name, for display.
func (c *Config) Names() map[string]string {
	out := make(map[string]string, len(registry))
	for _, d := range registry {
		out[d.Name] = c.Text(d.Key)
	}
	return out
}

// rootOwner reports which other root option currently holds root.
func (c *Config) rootOwner(root string, except Key) (Key, bool) {
	for _, k := range rootKeys {
		if k != except && c.Text(k) == root {
			return k, true
		}
	}
	return 0, false
}
