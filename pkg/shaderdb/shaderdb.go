// Package shaderdb provides read-only access to the shader parameter
// database: which material parameters and vertex attributes each in-game
// shader program requires.
package shaderdb

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Faultbox/ssbhlint/pkg/formats"
)

// Program describes what one shader program declares.
//
// MaterialParameters lists parameters in declaration order, optionally with
// a channel accessor suffix like "CustomVector0.xyz". VertexAttributes
// lists every attribute the vertex shader reads, including the built in
// position, normal and tangent attributes that every mesh provides.
type Program struct {
	Discard            bool     `json:"discard"`
	VertexAttributes   []string `json:"vertex_attributes"`
	MaterialParameters []string `json:"material_parameters"`
}

// Attributes every mesh object provides regardless of its texture
// coordinate and color set layout.
var builtinAttributes = map[string]struct{}{
	"Position0": {},
	"Normal0":   {},
	"Tangent0":  {},
}

// RequiredParameters returns the program's parameters as IDs in declaration
// order, with channel suffixes stripped and duplicates removed. Listings
// that fail to parse are skipped.
func (p *Program) RequiredParameters() []formats.ParamID {
	ids := make([]formats.ParamID, 0, len(p.MaterialParameters))
	seen := make(map[formats.ParamID]struct{}, len(p.MaterialParameters))
	for _, param := range p.MaterialParameters {
		name, _ := formats.SplitParam(param)
		id, ok := formats.ParseParamID(name)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// HasParameter reports whether the program declares the parameter under any
// channel accessor.
func (p *Program) HasParameter(id formats.ParamID) bool {
	for _, param := range p.MaterialParameters {
		name, _ := formats.SplitParam(param)
		if name == id.String() {
			return true
		}
	}
	return false
}

// AccessedChannels reports which of a Vector4 parameter's components the
// shader reads, as the union of channel accessors across listings. A
// listing without an accessor reads all four components.
func (p *Program) AccessedChannels(id formats.ParamID) [4]bool {
	var channels [4]bool
	name := id.String()
	for _, param := range p.MaterialParameters {
		base, suffix := formats.SplitParam(param)
		if base != name {
			continue
		}
		if suffix == "" {
			return [4]bool{true, true, true, true}
		}
		for _, c := range suffix {
			switch c {
			case 'x':
				channels[0] = true
			case 'y':
				channels[1] = true
			case 'z':
				channels[2] = true
			case 'w':
				channels[3] = true
			}
		}
	}
	return channels
}

// MissingRequiredAttributes returns the program's vertex attributes absent
// from the given attribute names, in declaration order. Built in attributes
// are never reported since every mesh provides them.
func (p *Program) MissingRequiredAttributes(attributes []string) []string {
	available := make(map[string]struct{}, len(attributes))
	for _, a := range attributes {
		available[a] = struct{}{}
	}

	var missing []string
	for _, required := range p.VertexAttributes {
		if _, builtin := builtinAttributes[required]; builtin {
			continue
		}
		if _, ok := available[required]; !ok {
			missing = append(missing, required)
		}
	}
	return missing
}

// Database maps shader label prefixes to programs.
type Database struct {
	programs map[string]Program
}

// New builds a database from a prefix keyed program map.
func New(programs map[string]Program) *Database {
	return &Database{programs: programs}
}

// Get looks up the program for a shader label. Labels longer than the
// 24 character program key are truncated; unknown labels return false.
func (d *Database) Get(shaderLabel string) (Program, bool) {
	if d == nil {
		return Program{}, false
	}
	key := shaderLabel
	if len(key) > 24 {
		key = key[:24]
	}
	program, ok := d.programs[key]
	return program, ok
}

// Len returns the number of programs in the database.
func (d *Database) Len() int {
	if d == nil {
		return 0
	}
	return len(d.programs)
}

// LoadFile reads a JSON program database keyed by shader label prefix.
func LoadFile(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shader database: %w", err)
	}
	var programs map[string]Program
	if err := json.Unmarshal(data, &programs); err != nil {
		return nil, fmt.Errorf("parsing shader database %s: %w", path, err)
	}
	return New(programs), nil
}
