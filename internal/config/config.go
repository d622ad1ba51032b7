// Package config handles .workboard.yaml configuration files.
package config

import "github.com/davetashner/workboard/internal/board"

// Config represents the contents of a .workboard.yaml file.
type Config struct {
	Title        string       `yaml:"title,omitempty"`
	OutputFormat string       `yaml:"output_format,omitempty"`
	GroupBy      string       `yaml:"group_by,omitempty"`
	ListLimit    int          `yaml:"list_limit,omitempty"`
	Filter       FilterConfig `yaml:"filter,omitempty"`
	Sort         []int        `yaml:"sort,omitempty"`
}

// FilterConfig holds the filter a dashboard opens with.
type FilterConfig struct {
	Query          string `yaml:"query,omitempty"`
	Owner          string `yaml:"owner,omitempty"`
	Stage          string `yaml:"stage,omitempty"`
	HideUnassigned *bool  `yaml:"hide_unassigned,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".workboard.yaml"

// Group-by values.
const (
	GroupByWorkspace = "workspace"
	GroupByStage     = "stage"
	GroupByOwner     = "owner"
	GroupByNone      = "none"
)

// Defaults applied when neither the CLI nor a config file sets a value.
const (
	DefaultTitle        = "Workboard"
	DefaultOutputFormat = "html"
	DefaultGroupBy      = GroupByWorkspace
	DefaultListLimit    = 5
)

// Settings is the fully resolved configuration a render runs with.
type Settings struct {
	Title        string
	OutputFormat string
	GroupBy      string
	ListLimit    int
	Filter       board.FilterState
	Sort         []int

	// FilterSet marks filter fields given explicitly, so an empty or false
	// value still overrides the config files.
	FilterSet FilterFields
}

// FilterFields names the fields of a filter.
type FilterFields struct {
	Query          bool
	Owner          bool
	Stage          bool
	HideUnassigned bool
}

// WithDefaults fills every unset field with its default.
func (s Settings) WithDefaults() Settings {
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.OutputFormat == "" {
		s.OutputFormat = DefaultOutputFormat
	}
	if s.GroupBy == "" {
		s.GroupBy = DefaultGroupBy
	}
	if s.ListLimit == 0 {
		s.ListLimit = DefaultListLimit
	}
	return s
}
