package config

// FileConfig mirrors aoc.yaml / aoc.toml. Pointer fields distinguish "unset"
// from zero values so defaults survive partial files.
type FileConfig struct {
	AOC FileSection `yaml:"aoc" toml:"aoc"`
}

type FileSection struct {
	Defaults struct {
		StripEmpty *bool `yaml:"strip_empty" toml:"strip_empty"`
	} `yaml:"defaults" toml:"defaults"`

	Paths struct {
		InputsDir string `yaml:"inputs_dir" toml:"inputs_dir"`
	} `yaml:"paths" toml:"paths"`

	Groups struct {
		Separator string `yaml:"separator" toml:"separator"`
	} `yaml:"groups" toml:"groups"`
}
