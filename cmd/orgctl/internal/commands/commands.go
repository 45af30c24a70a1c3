package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/wolfeidau/orgctl/internal/client"
	"github.com/wolfeidau/orgctl/internal/logger"
	"github.com/wolfeidau/orgctl/internal/validation"
)

type Globals struct {
	Debug   bool
	Version string
	Client  ClientFlags
	// Out receives command output, os.Stdout when nil.
	Out io.Writer
}

func (g *Globals) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// NewClient resolves the client configuration and builds a client logging
// at the level selected by --debug.
func (g *Globals) NewClient() (*client.Client, error) {
	cfg, err := g.Client.Resolve()
	if err != nil {
		return nil, err
	}
	cfg.Debug = g.Debug

	c, err := client.New(cfg, client.WithLogger(logger.Setup(g.Debug)))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}

// ClientFlags are the connection flags shared by every command.
type ClientFlags struct {
	Server     string        `help:"Organizations service base URL" env:"ORGCTL_SERVER"`
	Manager    string        `help:"Organization manager service base URL" env:"ORGCTL_MANAGER"`
	Timeout    time.Duration `help:"Request timeout" env:"ORGCTL_TIMEOUT"`
	EntityRoot string        `help:"Root element of create and update payloads" env:"ORGCTL_ENTITY_ROOT"`
	Config     string        `help:"YAML config file path" env:"ORGCTL_CONFIG" type:"path"`
}

// FileConfig is the layout of the YAML config file.
type FileConfig struct {
	Server        string        `yaml:"server"`
	Manager       string        `yaml:"manager"`
	Timeout       time.Duration `yaml:"timeout"`
	EntityRoot    string        `yaml:"entityRoot"`
	TrimValues    *bool         `yaml:"trimValues"`
	ParseTagValue *bool         `yaml:"parseTagValue"`
}

// Resolve merges flags, then the config file, then client defaults. Flags
// take precedence over the file.
func (f ClientFlags) Resolve() (client.Config, error) {
	cfg := client.DefaultConfig()

	if f.Config != "" {
		fc, err := loadConfigFile(f.Config)
		if err != nil {
			return client.Config{}, fmt.Errorf("failed to load config file: %w", err)
		}
		if fc.Server != "" {
			cfg.ServerURL = fc.Server
		}
		if fc.Manager != "" {
			cfg.ManagerURL = fc.Manager
		}
		if fc.Timeout > 0 {
			cfg.Timeout = fc.Timeout
		}
		if fc.EntityRoot != "" {
			cfg.EntityRoot = fc.EntityRoot
		}
		if fc.TrimValues != nil {
			cfg.Parser.TrimValues = *fc.TrimValues
		}
		if fc.ParseTagValue != nil {
			cfg.Parser.ParseTagValue = *fc.ParseTagValue
		}
	}

	if f.Server != "" {
		cfg.ServerURL = f.Server
	}
	if f.Manager != "" {
		cfg.ManagerURL = f.Manager
	}
	if f.Timeout > 0 {
		cfg.Timeout = f.Timeout
	}
	if f.EntityRoot != "" {
		cfg.EntityRoot = f.EntityRoot
	}

	return cfg, nil
}

func loadConfigFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return fc, nil
}

// ErrInvalidInput is returned after field messages have been printed.
var ErrInvalidInput = errors.New("invalid input")

// finish prints field messages for validation failures and drops
// cancellation, which is not an error for the user.
func finish(w io.Writer, err error) error {
	if err == nil || client.IsCanceled(err) {
		return nil
	}

	fe, ok := validation.AsFieldErrors(err)
	if !ok {
		return err
	}

	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(w, "Invalid input:")
	for _, k := range keys {
		fmt.Fprintf(w, "  %-16s %s\n", k, fe[k])
	}
	return ErrInvalidInput
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

// formatType renders PRIVATE_LIMITED_COMPANY as "Private limited company".
func formatType(t string) string {
	words := strings.Fields(strings.ToLower(strings.ReplaceAll(t, "_", " ")))
	if len(words) == 0 {
		return ""
	}
	r, size := utf8.DecodeRuneInString(words[0])
	words[0] = string(unicode.ToUpper(r)) + words[0][size:]
	return strings.Join(words, " ")
}
