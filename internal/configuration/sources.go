package configuration

// SourceConfig describes where raw axis samples come from.
// Exactly one sub-configuration must be set; when none is set the daemon
// falls back to the simulated source (test mode).
type SourceConfig struct {
	ID   string            `json:"id"`
	File *FileSourceConfig `json:"file,omitempty"`
	Cmd  *CmdSourceConfig  `json:"cmd,omitempty"`
	Sim  *SimSourceConfig  `json:"sim,omitempty"`
}

// FileSourceConfig reads one integer raw sample per axis from a file path.
// Useful for bridges that expose axis values through sysfs-like files.
type FileSourceConfig struct {
	Paths []string `json:"paths"`
}

// CmdSourceConfig polls an external executable that prints one
// whitespace-separated integer per axis on stdout.
type CmdSourceConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
	Axes int      `json:"axes"`
}

// SimSourceConfig is an in-memory source without any hardware behind it.
type SimSourceConfig struct {
	Axes int `json:"axes"`
}
