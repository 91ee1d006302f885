package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed worlds.yaml
var worldsYAML []byte

// LevelDef describes one level entry in the world table
type LevelDef struct {
	Number    int    `yaml:"number"`
	Archetype string `yaml:"archetype"`
	Exit      string `yaml:"exit"`
}

// WorldDef describes one world's flavor metadata and level list
type WorldDef struct {
	Number    int        `yaml:"number"`
	Name      string     `yaml:"name"`
	Theme     string     `yaml:"theme"`
	Boss      string     `yaml:"boss"`
	TimeLimit int        `yaml:"time_limit"`
	Levels    []LevelDef `yaml:"levels"`
}

type worldTable struct {
	Worlds []WorldDef `yaml:"worlds"`
}

var worlds []WorldDef

func init() {
	table, err := parseWorldTable(worldsYAML)
	if err != nil {
		panic("config: invalid embedded world table: " + err.Error())
	}
	worlds = table
}

func parseWorldTable(data []byte) ([]WorldDef, error) {
	var table worldTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse world table: %w", err)
	}
	if len(table.Worlds) == 0 {
		return nil, fmt.Errorf("parse world table: no worlds defined")
	}
	return table.Worlds, nil
}

// Worlds returns the full world table.
func Worlds() []WorldDef {
	return worlds
}

// World returns the metadata for a 1-based world number. Out-of-range
// numbers fall back to world 1.
func World(number int) WorldDef {
	for _, w := range worlds {
		if w.Number == number {
			return w
		}
	}
	return worlds[0]
}

// LevelArchetype returns the archetype tag for a 1-based world/level pair.
// Unknown levels fall back to the world's first level entry.
func LevelArchetype(world, level int) string {
	w := World(world)
	for _, l := range w.Levels {
		if l.Number == level {
			return l.Archetype
		}
	}
	return w.Levels[0].Archetype
}

// LevelExit returns the exit tag for a 1-based world/level pair, or "" when
// the table does not specify one.
func LevelExit(world, level int) string {
	for _, l := range World(world).Levels {
		if l.Number == level {
			return l.Exit
		}
	}
	return ""
}

// LevelCount returns the number of levels defined for a world.
func LevelCount(world int) int {
	return len(World(world).Levels)
}
