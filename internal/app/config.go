package app

import (
	"fmt"
	"log/slog"
	"strings"

	"black-hole/internal/core"
	"black-hole/internal/session"
	"black-hole/internal/sims/blackhole"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters shared by every host.
type Config struct {
	Sim       string
	Scale     int
	TPS       int
	Seed      int64
	Session   string
	NoSession bool
	LogLevel  string
	Overrides []string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "blackhole", Scale: 1, TPS: 60, Seed: 1337, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Session, "session", c.Session, "session file (default: user config dir)")
	fs.BoolVar(&c.NoSession, "no-session", c.NoSession, "ignore any saved session")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error")
	fs.StringArrayVar(&c.Overrides, "set", c.Overrides, "override a parameter, key=value (repeatable)")
}

// OverrideMap parses the --set pairs into the map accepted by sim factories.
func (c *Config) OverrideMap() (map[string]string, error) {
	out := make(map[string]string, len(c.Overrides)+1)
	out["seed"] = fmt.Sprint(c.Seed)
	for _, kv := range c.Overrides {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q: want key=value", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// SessionPath resolves the session file, falling back to the per-user default.
func (c *Config) SessionPath() (string, error) {
	if c.Session != "" {
		return c.Session, nil
	}
	return session.DefaultPath()
}

// Setup builds the configured simulation. A saved session is restored unless
// disabled, and --set overrides are applied on top of it.
func Setup(c *Config, log *slog.Logger) (*blackhole.Simulation, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	factory, ok := core.Lookup(c.Sim)
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.Sim)
	}
	overrides, err := c.OverrideMap()
	if err != nil {
		return nil, err
	}
	sim, ok := factory(overrides).(*blackhole.Simulation)
	if !ok {
		return nil, fmt.Errorf("sim %q has no particle host", c.Sim)
	}
	sim.WithLogger(log)
	if c.NoSession {
		return sim, nil
	}

	path, err := c.SessionPath()
	if err != nil {
		return nil, err
	}
	st, restored, err := session.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if restored {
		delete(overrides, "seed")
		st.Config.Apply(overrides)
		sim.Restore(st)
		log.Info("session restored", "path", path, "particles", len(st.Particles))
	}
	return sim, nil
}
