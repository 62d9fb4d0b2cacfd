// Package config holds the linting settings and loads them from the
// workspace settings file, the editor and TOML files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"

	"github.com/assembly-tolly/assembly-language-server/linter"
)

// Section is the settings namespace the editor uses for this language.
const Section = "assembly-tolly"

const lintingPrefix = Section + ".linting."

// WorkspaceSettingsPath is where the editor keeps workspace settings,
// relative to the workspace root.
var WorkspaceSettingsPath = filepath.Join(".vscode", "settings.json")

type Linting struct {
	LinterPath       string  `json:"linterPath" toml:"linterPath"`
	BaseFileOverride string  `json:"baseFileOverride" toml:"baseFileOverride"`
	MacroLimit       int     `json:"macroLimit" toml:"macroLimit"`
	WhileRepeatLimit int     `json:"whileRepeatLimit" toml:"whileRepeatLimit"`
	VariableDefines  Defines `json:"variableDefines" toml:"variableDefines"`

	EnableObsoleteDirectives bool `json:"enableObsoleteDirectives" toml:"enableObsoleteDirectives"`
	DisableVariableExpansion bool `json:"disableVariableExpansion" toml:"disableVariableExpansion"`
	DisableEscapeSequences   bool `json:"disableEscapeSequences" toml:"disableEscapeSequences"`
	DisableFileMacros        bool `json:"disableFileMacros" toml:"disableFileMacros"`
}

type Settings struct {
	Linting Linting `json:"linting" toml:"linting"`
}

func Default() Settings {
	return Settings{
		Linting: Linting{
			LinterPath:       linter.DefaultLinterPath,
			MacroLimit:       linter.DefaultMacroLimit,
			WhileRepeatLimit: linter.DefaultWhileRepeatLimit,
		},
	}
}

// LinterOptions converts the settings for one linter run. An empty linter
// path falls back to the default.
func (s Settings) LinterOptions() linter.Options {
	l := s.Linting
	path := l.LinterPath
	if path == "" {
		path = linter.DefaultLinterPath
	}
	return linter.Options{
		LinterPath:               path,
		BaseFileOverride:         l.BaseFileOverride,
		MacroLimit:               l.MacroLimit,
		WhileRepeatLimit:         l.WhileRepeatLimit,
		VariableDefines:          l.VariableDefines,
		EnableObsoleteDirectives: l.EnableObsoleteDirectives,
		DisableVariableExpansion: l.DisableVariableExpansion,
		DisableEscapeSequences:   l.DisableEscapeSequences,
		DisableFileMacros:        l.DisableFileMacros,
	}
}

// Defines maps variable names to the values passed with --define. Values
// may be written as numbers, strings or booleans.
type Defines map[string]string

func (d *Defines) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Defines, len(raw))
	for name, value := range raw {
		var s string
		if json.Unmarshal(value, &s) == nil {
			out[name] = s
			continue
		}
		out[name] = string(bytes.TrimSpace(value))
	}
	*d = out
	return nil
}

func (d *Defines) UnmarshalTOML(data any) error {
	table, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("variableDefines: expected a table, got %T", data)
	}
	out := make(Defines, len(table))
	for name, value := range table {
		out[name] = fmt.Sprint(value)
	}
	*d = out
	return nil
}

// LoadWorkspaceFile overlays the flat "assembly-tolly.linting.*" keys of a
// JSONC settings file onto s. A missing file is not an error.
func LoadWorkspaceFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	data, err = hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	var values map[string]json.RawMessage
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := applyFlat(values, s); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// ApplyLSP overlays settings sent by the client, either nested
// ({"assembly-tolly": {"linting": {...}}}) or with flat dotted keys.
func ApplyLSP(raw json.RawMessage, s *Settings) error {
	if len(bytes.TrimSpace(raw)) == 0 || isNull(raw) {
		return nil
	}
	var values map[string]json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return err
	}
	if nested, ok := values[Section]; ok && !isNull(nested) {
		var section struct {
			Linting json.RawMessage `json:"linting"`
		}
		if err := json.Unmarshal(nested, &section); err != nil {
			return err
		}
		if len(section.Linting) > 0 && !isNull(section.Linting) {
			if err := json.Unmarshal(section.Linting, &s.Linting); err != nil {
				return err
			}
		}
	}
	return applyFlat(values, s)
}

// LoadTOML overlays a TOML file with a [linting] table onto s.
func LoadTOML(path string, s *Settings) error {
	if _, err := toml.DecodeFile(path, s); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func applyFlat(values map[string]json.RawMessage, s *Settings) error {
	linting := make(map[string]json.RawMessage)
	for key, value := range values {
		if name, ok := strings.CutPrefix(key, lintingPrefix); ok && !isNull(value) {
			linting[name] = value
		}
	}
	if len(linting) == 0 {
		return nil
	}
	data, err := json.Marshal(linting)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.Linting)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
