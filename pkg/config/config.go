// Package config loads the project configuration shared by all build tool commands.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cristalhq/aconfig"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/voxium/voxium/tools/pkg/platform"
)

// DefaultFile is the config location relative to the project root
const DefaultFile = "Tools/Config/ProjectConfig.json"

// Config describes all configuration options
type Config struct {
	ProjectName    string `json:"project_name" yaml:"project_name" usage:"Name of the project, used in conan paths"`
	BuildDir       string `json:"build_dir" yaml:"build_dir" default:"build"`
	SourceDir      string `json:"source_dir" yaml:"source_dir" default:"Engine/Source"`
	DistDir        string `json:"dist_dir" yaml:"dist_dir" default:"dist"`
	BuildType      string `json:"build_type" yaml:"build_type" default:"Release"`
	CMakeGenerator string `json:"cmake_generator" yaml:"cmake_generator"`
	Compiler       struct {
		Cppstd int `json:"cppstd" yaml:"cppstd" default:"17"`
	} `json:"compiler" yaml:"compiler"`
	Conan struct {
		Profile  string `json:"profile" yaml:"profile" default:"default"`
		UserHome struct {
			Windows string `json:"windows" yaml:"windows"`
			Linux   string `json:"linux" yaml:"linux"`
			MacOS   string `json:"macos" yaml:"macos"`
		} `json:"user_home" yaml:"user_home" usage:"Conan home per platform, {project_name} is replaced"`
	} `json:"conan" yaml:"conan"`
	Log struct {
		Level string `json:"level" yaml:"level" default:"info"`
	} `json:"log" yaml:"log"`
}

var logLevels = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
}

// Validate verifies that all config fields have valid values
func (cfg *Config) Validate() error {
	if cfg.ProjectName == "" {
		return eris.New("Missing value for project_name")
	}

	if cfg.Compiler.Cppstd <= 0 {
		return eris.Errorf("Invalid value for compiler.cppstd: %d", cfg.Compiler.Cppstd)
	}

	if _, ok := logLevels[cfg.Log.Level]; !ok {
		return eris.Errorf("Invalid value for log.level: %s", cfg.Log.Level)
	}

	switch cfg.BuildType {
	case "Debug", "Release", "RelWithDebInfo", "MinSizeRel":
	default:
		return eris.Errorf("Invalid value for build_type: %s", cfg.BuildType)
	}

	return nil
}

// LogLevel converts the .Log.Level field to a zerolog.Level
func (cfg *Config) LogLevel() zerolog.Level {
	return logLevels[cfg.Log.Level]
}

// Project is a loaded configuration together with the project it belongs to
type Project struct {
	Root   string
	File   string
	Config Config

	raw []byte
}

// Load reads the config file at path. A relative path is resolved against root and an empty path
// selects DefaultFile. Values from the environment (VOXIUM_*) override the file.
func Load(root, path string) (*Project, error) {
	if path == "" {
		path = DefaultFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, eris.Wrapf(err, "Configuration file not found: %s", path)
	}
	if info.IsDir() {
		return nil, eris.Errorf("Configuration file %s is a directory", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to read %s", path)
	}

	if !json.Valid(raw) {
		return nil, eris.Errorf("Invalid JSON in configuration file %s", path)
	}

	project := &Project{
		Root: root,
		File: path,
		raw:  raw,
	}

	loader := aconfig.LoaderFor(&project.Config, aconfig.Config{
		EnvPrefix:          "VOXIUM",
		SkipFlags:          true,
		AllowUnknownFields: true,
		AllowUnknownEnvs:   true,
		Files:              []string{path},
	})
	if err := loader.Load(); err != nil {
		return nil, eris.Wrapf(err, "Failed to load %s", path)
	}

	return project, nil
}

func (p *Project) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(p.Root, path)
}

// BuildPath returns the absolute build directory
func (p *Project) BuildPath() string {
	return p.resolve(p.Config.BuildDir)
}

// SourcePath returns the absolute source directory
func (p *Project) SourcePath() string {
	return p.resolve(p.Config.SourceDir)
}

// DistPath returns the absolute dist directory
func (p *Project) DistPath() string {
	return p.resolve(p.Config.DistDir)
}

// ConanUserHome expands the conan home template for the given platform. On Windows the template is
// relative to the drive the project lives on.
func (p *Project) ConanUserHome(target platform.Platform) (string, error) {
	var tpl string
	switch target {
	case platform.Windows:
		tpl = p.Config.Conan.UserHome.Windows
	case platform.Linux:
		tpl = p.Config.Conan.UserHome.Linux
	case platform.MacOS:
		tpl = p.Config.Conan.UserHome.MacOS
	}

	if tpl == "" {
		return "", eris.Errorf("conan.user_home.%s is not configured", target)
	}

	home := strings.ReplaceAll(tpl, "{project_name}", p.Config.ProjectName)
	if target == platform.Windows {
		return filepath.Join(filepath.VolumeName(p.Root)+string(filepath.Separator), home), nil
	}

	return filepath.Clean(home), nil
}

// Summary formats the most important settings for display
func (p *Project) Summary() string {
	cfg := &p.Config
	lines := []string{
		"Project Configuration Summary:",
		"  PROJECT_NAME     : " + cfg.ProjectName,
		"  BUILD_DIR        : " + cfg.BuildDir,
		"  SOURCE_DIR       : " + cfg.SourceDir,
		"  DIST_DIR         : " + cfg.DistDir,
		"  CONAN_PROFILE    : " + cfg.Conan.Profile,
		"  COMPILER_STD     : " + strconv.Itoa(cfg.Compiler.Cppstd),
		"  BUILD_TYPE       : " + cfg.BuildType,
		"  CMAKE_GENERATOR  : " + cfg.CMakeGenerator,
	}

	return strings.Join(lines, "\n")
}

// YAML renders the resolved configuration
func (p *Project) YAML() (string, error) {
	data, err := yaml.Marshal(&p.Config)
	if err != nil {
		return "", eris.Wrap(err, "failed to encode config")
	}

	return string(data), nil
}
