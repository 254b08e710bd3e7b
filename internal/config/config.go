// Package config handles application preferences and settings.
package config

// Config holds all application settings.
type Config struct {
	Editor     EditorConfig     `yaml:"editor"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// EditorConfig holds display preferences.
type EditorConfig struct {
	DarkMode            bool `yaml:"dark_mode"`
	AutohideExpressions bool `yaml:"autohide_expressions"`
}

// ValidationConfig holds validation inputs.
type ValidationConfig struct {
	ShaderDatabase  string   `yaml:"shader_database"`  // Path to the shader program database
	DefaultTextures []string `yaml:"default_textures"` // Texture names always considered present
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			DarkMode:            true,
			AutohideExpressions: false,
		},
		Validation: ValidationConfig{
			ShaderDatabase: "",
			// Stage and shader textures that exist outside any model folder
			// but are valid assignment targets.
			DefaultTextures: []string{
				"#replace_cubemap",
				"/common/shader/sfxpbs/default_white",
				"/common/shader/sfxpbs/default_black",
				"/common/shader/sfxpbs/default_normal",
				"/common/shader/sfxpbs/default_params",
				"/common/shader/sfxpbs/fighter/default_normal",
				"/common/shader/sfxpbs/fighter/default_params",
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
