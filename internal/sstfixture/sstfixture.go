// Package sstfixture loads community-style single-step conformance
// fixtures for the 65C816: one JSON array of test cases per opcode file,
// each naming an initial register/memory state, the expected final state,
// and the bus transaction trace the instruction should produce.
package sstfixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// State is one snapshot of programmer-visible CPU state plus the RAM
// bytes the test cares about, in the shape used by the community 65816
// single-step test corpus.
type State struct {
	PC  uint16     `json:"pc"`
	S   uint16     `json:"s"`
	P   uint8      `json:"p"`
	A   uint16     `json:"a"`
	X   uint16     `json:"x"`
	Y   uint16     `json:"y"`
	DBR uint8      `json:"dbr"`
	D   uint16     `json:"d"`
	PBR uint8      `json:"pbr"`
	E   uint8      `json:"e"` // 0 or 1
	RAM [][2]int64 `json:"ram"`
}

// Cycle is one bus transaction: [address, value, kind], where kind is
// one of "read", "write" or "wait" (an internal cycle with no transfer).
type Cycle [3]any

// Case is a single named conformance fixture.
type Case struct {
	Name    string  `json:"name"`
	Initial State   `json:"initial"`
	Final   State   `json:"final"`
	Cycles  []Cycle `json:"cycles"`
}

// LoadFile parses one fixture JSON file into its test cases.
func LoadFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("sstfixture: %s: %w", path, err)
	}
	return cases, nil
}

// LoadDir loads every *.json fixture file directly under dir, sorted by
// filename so results are reproducible across runs. Returns a map keyed
// by the opcode mnemonic/number the filename encodes (the filename stem,
// e.g. "A9.json" -> "A9").
func LoadDir(dir string) (map[string][]Case, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)

	out := make(map[string][]Case, len(entries))
	for _, path := range entries {
		cases, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		stem := filepath.Base(path)
		stem = stem[:len(stem)-len(filepath.Ext(stem))]
		out[stem] = cases
	}
	return out, nil
}
