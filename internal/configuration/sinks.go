package configuration

// SinkConfig describes the virtual output device receiving the shaped axis
// values. Exactly one sub-configuration must be set; when none is set the
// daemon falls back to the simulated sink (test mode).
type SinkConfig struct {
	ID   string          `json:"id"`
	File *FileSinkConfig `json:"file,omitempty"`
	Cmd  *CmdSinkConfig  `json:"cmd,omitempty"`
	Sim  *SimSinkConfig  `json:"sim,omitempty"`
}

// FileSinkConfig writes each pedal's output value to its own file.
type FileSinkConfig struct {
	// Paths maps a pedal name to the target file path
	Paths map[string]string `json:"paths"`
}

// CmdSinkConfig invokes an external executable per axis update, appending
// the pedal name and value as the last two arguments.
type CmdSinkConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

// SimSinkConfig is an in-memory sink that only records the last values.
type SimSinkConfig struct{}
