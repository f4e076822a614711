package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shapestone/shape-table/pkg/table"
)

// separatorValue is a pflag.Value accepting a single character, an escaped
// tab, or "auto".
type separatorValue struct {
	sep  rune
	auto bool
}

var _ pflag.Value = (*separatorValue)(nil)

func (v *separatorValue) String() string {
	if v.auto {
		return "auto"
	}
	if v.sep == '\t' {
		return `\t`
	}
	return string(v.sep)
}

func (v *separatorValue) Set(s string) error {
	if strings.EqualFold(s, "auto") {
		v.auto = true
		return nil
	}
	sep, err := parseSeparator(s)
	if err != nil {
		return err
	}
	v.sep, v.auto = sep, false
	return nil
}

func (v *separatorValue) Type() string {
	return "separator"
}

// parseSeparator converts a flag value into a separator rune.
func parseSeparator(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("separator must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("separator is not valid UTF-8: %q", s)
	}
	return r, nil
}

// endingValue is a pflag.Value over table.Ending.
type endingValue struct {
	ending table.Ending
}

var _ pflag.Value = (*endingValue)(nil)

func (v *endingValue) String() string {
	return v.ending.String()
}

func (v *endingValue) Set(s string) error {
	e, err := table.ParseEnding(s)
	if err != nil {
		return err
	}
	v.ending = e
	return nil
}

func (v *endingValue) Type() string {
	return "ending"
}

// settings resolves the table settings for a command.
//
// Precedence: flag > config file > defaults. A separator of "auto" is
// detected from sample.
func (o *globalOptions) settings(cmd *cobra.Command, sample string) (table.Settings, error) {
	s := table.DefaultSettings()
	if o.configPath != "" {
		loaded, err := table.LoadSettingsFile(o.configPath)
		if err != nil {
			return table.Settings{}, err
		}
		s = loaded
		o.logger.Debug("loaded settings", "path", o.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("separator") {
		if o.separator.auto {
			s.Separator = table.DetectSeparator(sample)
			o.logger.Debug("detected separator", "separator", string(s.Separator))
		} else {
			s.Separator = o.separator.sep
		}
	}
	if flags.Changed("ending") {
		s.Ending = o.ending.ending
	}
	if flags.Changed("infer") {
		s.AutoDeriveType = o.infer
	}
	if flags.Changed("precision") {
		s.DoublePrecision = o.precision
	}

	if err := s.Validate(); err != nil {
		return table.Settings{}, err
	}
	o.logger.Debug("resolved settings",
		"separator", string(s.Separator),
		"ending", s.Ending.String(),
		"infer", s.AutoDeriveType,
		"precision", s.DoublePrecision)
	return s, nil
}
