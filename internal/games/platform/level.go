package platform

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pkozlov/calcade/internal/core"
)

//go:embed levels/default.yaml
var defaultLevelYAML []byte

// RectDef is a rectangle as written in a level file.
type RectDef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Rect converts the definition to a collision rectangle.
func (r RectDef) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Level is the static data a platformer level is built from: geometry,
// hazards, and the goal region. Everything dynamic lives in the game.
type Level struct {
	Name      string    `yaml:"name"`
	ParTicks  int       `yaml:"par_ticks"` // Finish under par for a score bonus
	Spawn     RectDef   `yaml:"spawn"`     // W/H ignored; spawn point
	Goal      RectDef   `yaml:"goal"`
	Platforms []RectDef `yaml:"platforms"`
	Hazards   []RectDef `yaml:"hazards"`
}

// LoadLevel reads a level definition. Search order: explicit custom path,
// ~/.calcade/levels/<name>.yaml, then the embedded default.
func LoadLevel(name, customPath string) (Level, error) {
	if customPath != "" {
		return levelFromFile(customPath)
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".calcade", "levels", name+".yaml")
		if _, err := os.Stat(p); err == nil {
			return levelFromFile(p)
		}
	}

	return parseLevel(defaultLevelYAML)
}

func levelFromFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("read level %s: %w", path, err)
	}
	return parseLevel(data)
}

func parseLevel(data []byte) (Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, fmt.Errorf("parse level: %w", err)
	}
	if lvl.Goal.W <= 0 || lvl.Goal.H <= 0 {
		return Level{}, fmt.Errorf("level %q: goal region is empty", lvl.Name)
	}
	return lvl, nil
}
