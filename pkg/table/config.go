package table

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// settingsFile is the YAML shape of Settings.
//
//	ending: crlf
//	separator: ";"
//	auto_derive_type: true
//	double_precision: 2
//
// Omitted keys keep their current value.
type settingsFile struct {
	Ending          *Ending `yaml:"ending,omitempty"`
	Separator       *string `yaml:"separator,omitempty"`
	AutoDeriveType  *bool   `yaml:"auto_derive_type,omitempty"`
	DoublePrecision *int    `yaml:"double_precision,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (s Settings) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sep := string(s.Separator)
	return settingsFile{
		Ending:          &s.Ending,
		Separator:       &sep,
		AutoDeriveType:  &s.AutoDeriveType,
		DoublePrecision: &s.DoublePrecision,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Keys absent from the document
// leave the corresponding field of s unchanged.
func (s *Settings) UnmarshalYAML(value *yaml.Node) error {
	var file settingsFile
	if err := value.Decode(&file); err != nil {
		return err
	}

	next := *s
	if file.Ending != nil {
		next.Ending = *file.Ending
	}
	if file.Separator != nil {
		sep, size := utf8.DecodeRuneInString(*file.Separator)
		if size == 0 || size != len(*file.Separator) || sep == utf8.RuneError {
			return &ConfigError{Field: "Separator", Message: fmt.Sprintf("must be a single character, got %q", *file.Separator)}
		}
		next.Separator = sep
	}
	if file.AutoDeriveType != nil {
		next.AutoDeriveType = *file.AutoDeriveType
	}
	if file.DoublePrecision != nil {
		next.DoublePrecision = *file.DoublePrecision
	}

	*s = next
	return nil
}

// LoadSettings reads YAML settings from r on top of DefaultSettings and
// validates the result. An empty document yields the defaults.
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettingsFile reads YAML settings from the file at path.
func LoadSettingsFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadSettings(f)
}

// SaveSettings writes s to w as YAML.
func SaveSettings(w io.Writer, s Settings) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return enc.Close()
}
