package domain

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}

// Workspace marker files, in lookup order.
const (
	ConfigFileYAML = "aoc.yaml"
	ConfigFileTOML = "aoc.toml"
)
