// Package config loads pairing-curve descriptors from TOML files and
// builds curve instances from them, so new toy curves can be defined
// without touching code.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/moonpair/tinypairing/curves"
)

// File is the top-level structure of a curve descriptor file.
type File struct {
	Curve Curve `toml:"curve"`
}

// Curve describes one pairing curve. Polynomial coefficient lists are
// ordered lowest power first, matching the written form read right to
// left.
type Curve struct {
	Name            string   `toml:"name"`
	Modulus         uint64   `toml:"modulus"`
	A               uint64   `toml:"a"`
	B               uint64   `toml:"b"`
	Order           uint64   `toml:"order"`
	R               uint64   `toml:"r"`
	EmbeddingDegree uint64   `toml:"embedding_degree"`
	Extension       []uint64 `toml:"extension"`
	ExtensionOrder  uint64   `toml:"extension_order"`
	G1              []uint64 `toml:"g1"`
	G2X             []uint64 `toml:"g2_x"`
	G2Y             []uint64 `toml:"g2_y"`
}

// Load reads and validates a descriptor file.
func Load(path string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := f.Curve.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &f, nil
}

func (c *Curve) validate() error {
	if c.Name == "" {
		return errors.New("curve name is required")
	}
	if c.Modulus == 0 {
		return errors.New("modulus is required")
	}
	if c.R == 0 || c.Order == 0 || c.ExtensionOrder == 0 {
		return errors.New("order, r and extension_order are required")
	}
	if c.EmbeddingDegree == 0 {
		return errors.New("embedding_degree is required")
	}
	if len(c.Extension) < 2 {
		return errors.New("extension must list at least two coefficients")
	}
	if len(c.G1) != 2 {
		return fmt.Errorf("g1 must have exactly two coordinates, got %d", len(c.G1))
	}
	if len(c.G2X) == 0 || len(c.G2Y) == 0 {
		return errors.New("g2_x and g2_y are required")
	}
	return nil
}

// Spec converts the descriptor into a curve spec.
func (c *Curve) Spec() curves.Spec {
	return curves.Spec{
		Name:       c.Name,
		Modulus:    c.Modulus,
		A:          c.A,
		B:          c.B,
		Order:      c.Order,
		R:          c.R,
		K:          c.EmbeddingDegree,
		ExtModulus: c.Extension,
		ExtOrder:   c.ExtensionOrder,
		G1X:        c.G1[0],
		G1Y:        c.G1[1],
		G2X:        c.G2X,
		G2Y:        c.G2Y,
	}
}

// Build loads a descriptor file and constructs the curve instance it
// describes.
func Build(path string) (*curves.Instance, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return curves.Build(f.Curve.Spec())
}
