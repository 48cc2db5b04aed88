// Package parse turns the textual blueprint list into validated blueprints.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdrpinto/geodes"
)

const blueprintFormat = "Blueprint %d: Each ore robot costs %d ore. " +
	"Each clay robot costs %d ore. " +
	"Each obsidian robot costs %d ore and %d clay. " +
	"Each geode robot costs %d ore and %d obsidian."

// Line parses a single blueprint description.
func Line(line string) (geodes.Blueprint, error) {
	var id, oreOre, clayOre, obsidianOre, obsidianClay, geodeOre, geodeObsidian uint32
	line = strings.Join(strings.Fields(line), " ")
	n, err := fmt.Sscanf(line, blueprintFormat,
		&id, &oreOre, &clayOre, &obsidianOre, &obsidianClay, &geodeOre, &geodeObsidian)
	if err != nil {
		return geodes.Blueprint{}, fmt.Errorf("parse blueprint (read %d of 7 numbers): %w", n, err)
	}
	bp := geodes.NewBlueprint(id, oreOre, clayOre, obsidianOre, obsidianClay, geodeOre, geodeObsidian)
	if err := bp.Validate(); err != nil {
		return geodes.Blueprint{}, err
	}
	return bp, nil
}

// Blueprints reads one blueprint per non-blank line.
func Blueprints(r io.Reader) ([]geodes.Blueprint, error) {
	var blueprints []geodes.Blueprint
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		bp, err := Line(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		blueprints = append(blueprints, bp)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read blueprints: %w", err)
	}
	return blueprints, nil
}

// File reads blueprints from path.
func File(path string) ([]geodes.Blueprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Blueprints(f)
}
