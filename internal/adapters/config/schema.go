package config

// Mkfile represents the structure of the mk.yaml settings file.
type Mkfile struct {
	Version   string `yaml:"version"`
	Tool      string `yaml:"tool"`
	OutputDir string `yaml:"outputDir"`
	WorkDir   string `yaml:"workDir"`
	Journal   bool   `yaml:"journal"`
}

// SchemaVersion is the only mk.yaml version understood. An omitted version means this one.
const SchemaVersion = "1"
