package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"pkt.systems/resumefmt"
)

// Mode selects the rendering backend.
type Mode string

const (
	// ModeProcedural draws at absolute positions and paginates by hand.
	ModeProcedural Mode = "procedural"
	// ModeDeclarative builds a node tree and lets the PDF writer wrap pages.
	ModeDeclarative Mode = "declarative"
)

// Config holds PDF rendering settings.
type Config struct {
	Mode               Mode                 `toml:"mode" yaml:"mode"`
	PageSize           string               `toml:"page_size" yaml:"page_size"`
	Margin             float64              `toml:"margin" yaml:"margin"`
	FontFamily         string               `toml:"font_family" yaml:"font_family"`
	RegularFont        string               `toml:"regular_font" yaml:"regular_font"`
	BoldFont           string               `toml:"bold_font" yaml:"bold_font"`
	ItalicFont         string               `toml:"italic_font" yaml:"italic_font"`
	BoldItalicFont     string               `toml:"bold_italic_font" yaml:"bold_italic_font"`
	TextColor          string               `toml:"text_color" yaml:"text_color"`
	RuleColor          string               `toml:"rule_color" yaml:"rule_color"`
	TrailingOnNewPage  bool                 `toml:"trailing_on_new_page" yaml:"trailing_on_new_page"`
	DisableCompression bool                 `toml:"disable_compression" yaml:"disable_compression"`
	Title              string               `toml:"title" yaml:"title"`
	Author             string               `toml:"author" yaml:"author"`
	Subject            string               `toml:"subject" yaml:"subject"`
	Creator            string               `toml:"creator" yaml:"creator"`
	Styles             resumefmt.StyleSheet `toml:"styles" yaml:"styles"`
}

// DefaultConfig returns a baseline configuration: US Letter, 50pt margins,
// Helvetica and the default style sheet.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeProcedural,
		PageSize:   "Letter",
		Margin:     50,
		FontFamily: "Helvetica",
		TextColor:  "#1a1a1a",
		RuleColor:  "#404040",
		Creator:    "resumefmt",
		Styles:     resumefmt.DefaultStyleSheet(),
	}
}

// LoadConfig reads a TOML or YAML config file, chosen by extension. Fields
// left out keep their zero value and fall back to defaults at render time.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("pdf config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("pdf config: %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return Config{}, fmt.Errorf("pdf config: %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("pdf config: %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("pdf config: %s: expected .toml, .yaml or .yml", path)
	}
	return cfg, nil
}

func applyConfig(dst *Config, src Config) {
	if src.Mode != "" {
		dst.Mode = src.Mode
	}
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.RegularFont != "" {
		dst.RegularFont = src.RegularFont
	}
	if src.BoldFont != "" {
		dst.BoldFont = src.BoldFont
	}
	if src.ItalicFont != "" {
		dst.ItalicFont = src.ItalicFont
	}
	if src.BoldItalicFont != "" {
		dst.BoldItalicFont = src.BoldItalicFont
	}
	if src.TextColor != "" {
		dst.TextColor = src.TextColor
	}
	if src.RuleColor != "" {
		dst.RuleColor = src.RuleColor
	}
	if src.TrailingOnNewPage {
		dst.TrailingOnNewPage = true
	}
	if src.DisableCompression {
		dst.DisableCompression = true
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Author != "" {
		dst.Author = src.Author
	}
	if src.Subject != "" {
		dst.Subject = src.Subject
	}
	if src.Creator != "" {
		dst.Creator = src.Creator
	}
	dst.Styles = dst.Styles.Merge(src.Styles)
}

func validateConfig(cfg Config) error {
	switch cfg.Mode {
	case ModeProcedural, ModeDeclarative:
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if !isPageSize(cfg.PageSize) {
		return fmt.Errorf("unsupported page size %q", cfg.PageSize)
	}
	if cfg.FontFamily == "" {
		return fmt.Errorf("font family is empty")
	}
	hasPath := cfg.RegularFont != "" || cfg.BoldFont != "" || cfg.ItalicFont != ""
	if hasPath && (cfg.RegularFont == "" || cfg.BoldFont == "" || cfg.ItalicFont == "") {
		return fmt.Errorf("regular, bold and italic font paths must all be set")
	}
	if !hasPath && cfg.BoldItalicFont != "" {
		return fmt.Errorf("bold-italic font requires regular, bold and italic fonts")
	}
	if !hasPath && !isCoreFont(cfg.FontFamily) {
		return fmt.Errorf("core font family required when font paths are empty")
	}
	if _, ok := parseHexColor(cfg.TextColor); !ok {
		return fmt.Errorf("invalid text color %q", cfg.TextColor)
	}
	if _, ok := parseHexColor(cfg.RuleColor); !ok {
		return fmt.Errorf("invalid rule color %q", cfg.RuleColor)
	}
	return nil
}

func isPageSize(name string) bool {
	switch strings.ToLower(name) {
	case "letter", "legal", "a3", "a4", "a5":
		return true
	default:
		return false
	}
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Arial", "Times":
		return true
	default:
		return false
	}
}
