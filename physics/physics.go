/*
Package physics provides named physical constants for evaluating formulas.

Constants are named by their spelling in LaTeX formulas, e.g. `\hbar` or
"k_B". The default table holds CODATA 2018 values in SI units. Please note
that "e" is the elementary charge; Euler's number is written \mathrm{e}.

Applications may load additional or replacement constants from a TOML or YAML
file, consisting of a flat table of names and values:

    c = 299792458
    "\\hbar" = 1.054571817e-34

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package physics

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/fishrambeta"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'fishrambeta.physics'.
func tracer() tracing.Trace {
	return tracing.Select("fishrambeta.physics")
}

// Provider is a source of named constants.
type Provider interface {
	Values() map[string]float64
}

// Table is a table of named constants.
type Table map[string]float64

// Values returns a copy of the table. It is part of interface Provider.
func (t Table) Values() map[string]float64 {
	values := make(map[string]float64, len(t))
	for k, v := range t {
		values[k] = v
	}
	return values
}

// Defaults returns the default table of physical constants.
func Defaults() Table {
	return Table{
		"c":             299792458,         // speed of light in vacuum, m/s
		"G":             6.67430e-11,       // gravitational constant, m³/(kg s²)
		"h":             6.62607015e-34,    // Planck constant, J s
		`\hbar`:         1.054571817e-34,   // reduced Planck constant, J s
		"k_B":           1.380649e-23,      // Boltzmann constant, J/K
		"N_A":           6.02214076e23,     // Avogadro constant, 1/mol
		"e":             1.602176634e-19,   // elementary charge, C
		"m_e":           9.1093837015e-31,  // electron mass, kg
		"m_p":           1.67262192369e-27, // proton mass, kg
		`\epsilon_0`:    8.8541878128e-12,  // vacuum permittivity, F/m
		`\varepsilon_0`: 8.8541878128e-12,  // vacuum permittivity, F/m
		`\mu_0`:         1.25663706212e-6,  // vacuum permeability, N/A²
		"g":             9.80665,           // standard gravity, m/s²
		"R":             8.314462618,       // molar gas constant, J/(mol K)
		`\sigma`:        5.670374419e-8,    // Stefan-Boltzmann constant, W/(m² K⁴)
	}
}

// Format is the format of a constants file.
type Format int

// Supported file formats
const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "YAML"
	}
	return "TOML"
}

// detectFormat determines the file format from the file extension.
func detectFormat(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return FormatTOML, false
}

// LoadFile reads constants from a TOML or YAML file. The constants are merged
// over the defaults, i.e., they add to or replace default constants.
func LoadFile(path string) (Table, error) {
	format, ok := detectFormat(path)
	if !ok {
		return nil, fishrambeta.Errorf(fishrambeta.MalformedInput,
			"constants file %s is neither TOML nor YAML", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	loaded, err := Parse(content, format)
	if err != nil {
		return nil, err
	}
	table := Defaults()
	for k, v := range loaded {
		table[k] = v
	}
	tracer().Infof("loaded %d constants from %s", len(loaded), path)
	return table, nil
}

// Parse reads a flat table of constants in a given format.
func Parse(content []byte, format Format) (Table, error) {
	var data map[string]interface{}
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "TOML parse error: %v", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "YAML parse error: %v", err)
		}
	default:
		return nil, fishrambeta.Errorf(fishrambeta.MalformedInput, "unsupported format: %s", format)
	}
	table := make(Table, len(data))
	for name, value := range data {
		v, ok := toFloat(value)
		if !ok {
			return nil, fishrambeta.Errorf(fishrambeta.MalformedInput,
				"%s constant %q is not a number: %v", format, name, value)
		}
		table[name] = v
	}
	return table, nil
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
