// SPDX-License-Identifier: MIT
package config

import (
	"io"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "TBRPA"

// File is a decoded run file.
type File struct {
	Name        string          `mapstructure:"name"`
	Lattice     LatticeSpec     `mapstructure:"lattice"`
	Orbitals    []OrbitalSpec   `mapstructure:"orbitals"`
	Hoppings    []HoppingSpec   `mapstructure:"hoppings"`
	Symmetry    SymmetrySpec    `mapstructure:"symmetry"`
	Mesh        MeshSpec        `mapstructure:"mesh"`
	Sweep       SweepSpec       `mapstructure:"sweep"`
	Interaction InteractionSpec `mapstructure:"interaction"`
	Engine      EngineSpec      `mapstructure:"engine"`

	LogLevel string `mapstructure:"log_level"`
	StoreDir string `mapstructure:"store_dir"`
}

// LatticeSpec selects a Bravais lattice. Kind is cubic, tetragonal,
// hexagonal or general; general reads the three rows of Vectors.
type LatticeSpec struct {
	Kind    string      `mapstructure:"kind"`
	A       float64     `mapstructure:"a"`
	C       float64     `mapstructure:"c"`
	Vectors [][]float64 `mapstructure:"vectors"`
}

type OrbitalSpec struct {
	Name     string    `mapstructure:"name"`
	Position []float64 `mapstructure:"position"`
	Group    int       `mapstructure:"group"`
}

// HoppingSpec is t(From, To, R) = T + i·Ti in eV.
type HoppingSpec struct {
	From int       `mapstructure:"from"`
	To   int       `mapstructure:"to"`
	R    []float64 `mapstructure:"r"`
	T    float64   `mapstructure:"t"`
	Ti   float64   `mapstructure:"ti"`
}

// SymmetrySpec names a tabulated point group or lists Cartesian generators
// with orbital permutations. Generators win when both are given.
type SymmetrySpec struct {
	Group      string          `mapstructure:"group"`
	Generators []GeneratorSpec `mapstructure:"generators"`
}

type GeneratorSpec struct {
	Name string      `mapstructure:"name"`
	R    [][]float64 `mapstructure:"r"`
	Perm []int       `mapstructure:"perm"`
}

type MeshSpec struct {
	Grid        []int     `mapstructure:"grid"`
	Shift       []float64 `mapstructure:"shift"`
	IncludeEnds bool      `mapstructure:"include_ends"`
}

// RangeSpec is either explicit Values or N points from Start to Stop.
type RangeSpec struct {
	Values []float64 `mapstructure:"values"`
	Start  float64   `mapstructure:"start"`
	Stop   float64   `mapstructure:"stop"`
	N      int       `mapstructure:"n"`
}

// SweepSpec lists the parameter axes. Q holds explicit reduced momenta;
// QGrid (a full mesh) or QPlane (a 2D map) replaces them when set.
type SweepSpec struct {
	Temperatures       RangeSpec   `mapstructure:"temperatures"`
	ChemicalPotentials RangeSpec   `mapstructure:"chemical_potentials"`
	Frequencies        RangeSpec   `mapstructure:"frequencies"`
	Q                  [][]float64 `mapstructure:"q"`
	QGrid              []int       `mapstructure:"q_grid"`
	QPlane             *PlaneSpec  `mapstructure:"q_plane"`
}

// PlaneSpec is origin + i/(n1−1)·u + j/(n2−1)·v in reduced coordinates.
type PlaneSpec struct {
	Origin []float64 `mapstructure:"origin"`
	U      []float64 `mapstructure:"u"`
	V      []float64 `mapstructure:"v"`
	N1     int       `mapstructure:"n1"`
	N2     int       `mapstructure:"n2"`
}

type InteractionSpec struct {
	U       float64       `mapstructure:"u"`
	Up      float64       `mapstructure:"up"`
	J       float64       `mapstructure:"j"`
	Jp      float64       `mapstructure:"jp"`
	OffSite []OffSiteSpec `mapstructure:"off_site"`
}

type OffSiteSpec struct {
	A int         `mapstructure:"a"`
	B int         `mapstructure:"b"`
	V float64     `mapstructure:"v"`
	R [][]float64 `mapstructure:"r"`
}

// EngineSpec tunes the engine. Threads 0 defers to ThreadsFile; Rescale 0
// disables rescaling.
type EngineSpec struct {
	Threads     int     `mapstructure:"threads"`
	ThreadsFile string  `mapstructure:"threads_file"`
	Eta         float64 `mapstructure:"eta"`
	Rescale     float64 `mapstructure:"rescale"`
	CacheSize   int     `mapstructure:"cache_size"`
	Pruning     bool    `mapstructure:"pruning"`
	MaxSweeps   int     `mapstructure:"max_sweeps"`
}

// New returns a viper instance with defaults and environment overrides set.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("name", "model")
	v.SetDefault("lattice.kind", "cubic")
	v.SetDefault("lattice.a", 1.0)
	v.SetDefault("lattice.c", 1.0)
	v.SetDefault("mesh.include_ends", false)
	v.SetDefault("engine.threads", 0)
	v.SetDefault("engine.threads_file", ThreadsFile)
	v.SetDefault("engine.eta", 1e-4)
	v.SetDefault("engine.rescale", 0.0)
	v.SetDefault("engine.cache_size", 4096)
	v.SetDefault("engine.pruning", true)
	v.SetDefault("engine.max_sweeps", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("store_dir", "")

	return v
}

// Load reads the YAML run file at path.
//
// Errors: the viper read error, or ErrBadConfig when decoding fails.
func Load(path string) (*File, error) {
	v := New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, configErrorf("Load", err)
	}

	return Decode(v)
}

// Read parses a YAML run file from r.
func Read(r io.Reader) (*File, error) {
	v := New()
	if err := v.ReadConfig(r); err != nil {
		return nil, configErrorf("Read", err)
	}

	return Decode(v)
}

// Decode unmarshals the settings held by v.
func Decode(v *viper.Viper) (*File, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, configErrorf("Decode", badf("%v", err))
	}

	return &f, nil
}
