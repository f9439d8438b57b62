package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Story.Spacing != SpacingSourceOriginal {
		t.Errorf("Default spacing = %s, want original", cfg.Story.Spacing)
	}
	if cfg.Dictionary.Unpaired != UnpairedPolicyReject {
		t.Errorf("Default unpaired policy = %s, want reject", cfg.Dictionary.Unpaired)
	}
	if !slices.Equal(cfg.Story.Extensions, []string{".txt", ".story"}) {
		t.Errorf("Default extensions = %v", cfg.Story.Extensions)
	}
	if cfg.Story.OutputExtension != ".filled.txt" {
		t.Errorf("Default output extension = %q, want .filled.txt", cfg.Story.OutputExtension)
	}
	if cfg.Story.OutputNameTemplate != "" {
		t.Errorf("Default output name template = %q, want empty", cfg.Story.OutputNameTemplate)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
story:
  extensions: [".tmpl"]
  spacing: resolved
  output_name_template: "{{ .SourceFile }}-{{ .RunID }}"
  file_name_transliterate: true
dictionary:
  unpaired: pad
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Story.Spacing != SpacingSourceResolved {
		t.Errorf("Spacing = %s, want resolved", cfg.Story.Spacing)
	}
	if cfg.Dictionary.Unpaired != UnpairedPolicyPad {
		t.Errorf("Unpaired = %s, want pad", cfg.Dictionary.Unpaired)
	}
	if !slices.Equal(cfg.Story.Extensions, []string{".tmpl"}) {
		t.Errorf("Extensions = %v, want [.tmpl]", cfg.Story.Extensions)
	}
	// template must survive configuration processing untouched
	if cfg.Story.OutputNameTemplate != "{{ .SourceFile }}-{{ .RunID }}" {
		t.Errorf("OutputNameTemplate = %q", cfg.Story.OutputNameTemplate)
	}
	if !cfg.Story.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}
	// values not in the file come from defaults
	if cfg.Story.OutputExtension != ".filled.txt" {
		t.Errorf("OutputExtension = %q, want default .filled.txt", cfg.Story.OutputExtension)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("File log mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "invalid yaml",
			content: `version: 1
story:
  spacing: original
  invalid indent
`,
		},
		{
			name: "unknown fields",
			content: `version: 1
unknown_field: value
`,
		},
		{
			name: "unsupported version",
			content: `version: 2
`,
		},
		{
			name: "unknown spacing",
			content: `version: 1
story:
  spacing: sideways
`,
		},
		{
			name: "unknown unpaired policy",
			content: `version: 1
dictionary:
  unpaired: ignore
`,
		},
		{
			name: "extension without dot",
			content: `version: 1
story:
  extensions: ["txt"]
`,
		},
		{
			name: "no extensions",
			content: `version: 1
story:
  extensions: []
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			_, err := LoadConfiguration(configPath)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Story: StoryConfig{
			Extensions:      []string{".txt"},
			Spacing:         SpacingSourceResolved,
			OutputExtension: ".out",
		},
		Dictionary: DictionaryConfig{
			Unpaired: UnpairedPolicyDrop,
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{"version: 1", "spacing: resolved", "unpaired: drop", "output_extension: .out"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() output missing %q:\n%s", want, out)
		}
	}

	// round trip through decoder used for configuration files
	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unable to read dumped configuration: %v", err)
	}
	if back.Story.Spacing != SpacingSourceResolved || back.Dictionary.Unpaired != UnpairedPolicyDrop {
		t.Errorf("Enums did not survive dump: %+v %+v", back.Story, back.Dictionary)
	}
}

func TestEnumParsing(t *testing.T) {
	if _, err := ParseSpacingSource("bogus"); !errors.Is(err, ErrInvalidSpacingSource) {
		t.Errorf("ParseSpacingSource(bogus) error = %v", err)
	}
	if p, err := ParseUnpairedPolicy("pad"); err != nil || p != UnpairedPolicyPad {
		t.Errorf("ParseUnpairedPolicy(pad) = %v, %v", p, err)
	}
	if got := UnpairedPolicy(42).String(); got != "UnpairedPolicy(42)" {
		t.Errorf("String() for unknown value = %q", got)
	}
	if !slices.Equal(SpacingSourceNames(), []string{"original", "resolved"}) {
		t.Errorf("SpacingSourceNames() = %v", SpacingSourceNames())
	}
}
