package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"sphereworld/internal/logger"

	"gopkg.in/yaml.v3"
)

// ConfigPaths are tried in order so the config is found whether run from repo root or cmd/sphereworld.
var ConfigPaths = []string{
	"config/sphereworld.yaml",
	"../../config/sphereworld.yaml",
}

// Prefs holds window and overlay preferences. None of them change what the scene renders.
type Prefs struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Title        string `yaml:"title"`
	Seed         int64  `yaml:"seed"` // 0 = time-based sphere layout
	VSync        bool   `yaml:"vsync"`
	MSAA         bool   `yaml:"msaa"`
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	ShowCamera   bool   `yaml:"show_camera"`
	LogPath      string `yaml:"log_path,omitempty"`
	Debug        bool   `yaml:"debug"`
}

// Default returns the default preferences: an 800x600 window, overlays off, time-based seed.
func Default() Prefs {
	return Prefs{
		Width:   800,
		Height:  600,
		Title:   "OpenGL SphereWorld",
		LogPath: logger.LogFilePath,
	}
}

// Find returns the first of ConfigPaths that exists, or "" if none does.
func Find() string {
	for _, p := range ConfigPaths {
		cleaned := filepath.Clean(p)
		if _, err := os.Stat(cleaned); err == nil {
			return cleaned
		}
	}
	return ""
}

// Load reads preferences from path. Keys missing from the file keep their defaults.
// An empty path or a missing file returns Default() without error; an unreadable or malformed
// file returns Default() and the error so the caller can report it.
func Load(path string) (Prefs, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: parse %s: %w", path, err)
	}
	def := Default()
	if p.Width <= 0 {
		p.Width = def.Width
	}
	if p.Height <= 0 {
		p.Height = def.Height
	}
	if p.Title == "" {
		p.Title = def.Title
	}
	if p.LogPath == "" {
		p.LogPath = def.LogPath
	}
	return p, nil
}
