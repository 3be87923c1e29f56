package config

// Matefile represents the structure of the mate.yaml configuration file.
// Tool commands are m8-style string templates ("cc -c") split into argv by
// the loader; every field is optional and falls back to a default.
type Matefile struct {
	Output        string   `yaml:"output"`
	Type          string   `yaml:"type"`
	Compiler      string   `yaml:"compiler"`
	CompilerArgs  string   `yaml:"compilerArgs"`
	Linker        string   `yaml:"linker"`
	LinkerArgs    string   `yaml:"linkerArgs"`
	Archiver      string   `yaml:"archiver"`
	SourceDir     string   `yaml:"sourceDir"`
	BuildDir      string   `yaml:"buildDir"`
	DistDir       string   `yaml:"distDir"`
	ObjectExt     string   `yaml:"objectExt"`
	InstallPrefix string   `yaml:"installPrefix"`
	Sources       []string `yaml:"sources"`
	Headers       []string `yaml:"headers"`
}
