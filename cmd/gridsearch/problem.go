package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridstate/coord"
)

// Problem kinds.
const (
	KindMaze      = "maze"
	KindTurns     = "turns"
	KindTrails    = "trails"
	KindShortcuts = "shortcuts"
	KindBytes     = "bytes"
	KindRegions   = "regions"
)

// Problem is one puzzle read from a problem file. Only the fields its Kind
// uses need to be set.
type Problem struct {
	Name string   `yaml:"name"`
	Kind string   `yaml:"kind"`
	Grid []string `yaml:"grid"`

	// turns
	Facing   string `yaml:"facing"`
	Straight int64  `yaml:"straight"`
	Turn     int64  `yaml:"turn"`

	// shortcuts
	Radius    int    `yaml:"radius"`
	Threshold int64  `yaml:"threshold"`
	Metric    string `yaml:"metric"`

	// bytes: a Rows×Cols grid at (0, 0), obstacles as "x,y" pairs
	Rows      int      `yaml:"rows"`
	Cols      int      `yaml:"cols"`
	Obstacles []string `yaml:"obstacles"`
	Fallen    int      `yaml:"fallen"`
	Scan      string   `yaml:"scan"`

	// Expect holds the answers the solver must reproduce, by answer name.
	Expect map[string]int64 `yaml:"expect"`
}

type problemFile struct {
	Problems []Problem `yaml:"problems"`
}

// LoadProblems reads every problem in the YAML file at path.
func LoadProblems(path string) ([]Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProblems(data)
}

// ParseProblems decodes a problem file.
func ParseProblems(data []byte) ([]Problem, error) {
	var f problemFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("problem file: %w", err)
	}
	for i, p := range f.Problems {
		if p.Name == "" {
			f.Problems[i].Name = fmt.Sprintf("%s#%d", p.Kind, i+1)
		}
	}
	return f.Problems, nil
}

// parseXY reads an "x,y" pair as a coordinate with Row y and Col x.
func parseXY(s string) (coord.Coordinate, error) {
	x, y, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return coord.Coordinate{}, fmt.Errorf("obstacle %q: want x,y", s)
	}
	col, err := strconv.Atoi(x)
	if err != nil {
		return coord.Coordinate{}, fmt.Errorf("obstacle %q: %w", s, err)
	}
	row, err := strconv.Atoi(y)
	if err != nil {
		return coord.Coordinate{}, fmt.Errorf("obstacle %q: %w", s, err)
	}
	return coord.At(row, col), nil
}

func formatXY(c coord.Coordinate) string {
	return strconv.Itoa(c.Col) + "," + strconv.Itoa(c.Row)
}
