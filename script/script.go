// Package script describes a deck as data: an ordered list of slide
// descriptions that can be loaded from YAML or TOML and built into a
// godeck.Deck.
package script

import "errors"

var (
	// ErrUnknownKind is returned for a slide whose kind is not one of the
	// four builders.
	ErrUnknownKind = errors.New("unknown slide kind")
	// ErrUnsupportedFormat is returned by Load for a file extension other
	// than .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("unsupported script format")
)

// Kind selects the builder of a slide.
type Kind string

const (
	KindTitle        Kind = "title"
	KindContent      Kind = "content"
	KindArchitecture Kind = "architecture"
	KindPipeline     Kind = "pipeline"
)

// Script is a whole deck. Title and Subject end up in the document
// properties of the written file.
type Script struct {
	Title   string      `yaml:"title" toml:"title"`
	Subject string      `yaml:"subject" toml:"subject"`
	Slides  []SlideSpec `yaml:"slides" toml:"slides"`
}

// SlideSpec describes one slide. Which fields apply depends on Kind:
//
//	title:        Title, Subtitle
//	content:      Title, Bullets, Code
//	architecture: Title, Nodes, Config
//	pipeline:     Title, Stages, Command
type SlideSpec struct {
	Kind     Kind     `yaml:"kind" toml:"kind"`
	Title    string   `yaml:"title" toml:"title"`
	Subtitle string   `yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
	Bullets  []string `yaml:"bullets,omitempty" toml:"bullets,omitempty"`
	Code     string   `yaml:"code,omitempty" toml:"code,omitempty"`
	Nodes    []string `yaml:"nodes,omitempty" toml:"nodes,omitempty"`
	Config   string   `yaml:"config,omitempty" toml:"config,omitempty"`
	Stages   []Stage  `yaml:"stages,omitempty" toml:"stages,omitempty"`
	Command  string   `yaml:"command,omitempty" toml:"command,omitempty"`
}

// Stage is one box of a pipeline slide. Color names a theme role such as
// "highlight", "accent" or "success".
type Stage struct {
	Title    string `yaml:"title" toml:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle"`
	Color    string `yaml:"color" toml:"color"`
}
