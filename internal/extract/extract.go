// Package extract loads API descriptors from the JSON export produced by the
// runtime's introspection step.
//
// Type names in the export are raw runtime identities ("Int32", "String[]",
// "NetUndefined", "PlayerPrototype") and are normalized to display names on
// load. Files ending in ".zst" are zstd-compressed.
package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcdickinson/kolbendoc/internal/docs"
	"github.com/klauspost/compress/zstd"
)

// Export is the on-disk descriptor format.
type Export struct {
	Classes    []docs.ApiClass     `json:"classes"`
	Prototypes []docs.ApiPrototype `json:"prototypes"`
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// Load reads and normalizes a descriptor export.
func Load(path string) ([]docs.ApiClass, []docs.ApiPrototype, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening descriptor export: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if isCompressed(path) {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	return Decode(r)
}

// Decode reads a descriptor export from r, normalizes its type names and
// validates every signature.
func Decode(r io.Reader) ([]docs.ApiClass, []docs.ApiPrototype, error) {
	var exp Export
	if err := json.NewDecoder(r).Decode(&exp); err != nil {
		return nil, nil, fmt.Errorf("decoding descriptor export: %w", err)
	}

	for i := range exp.Classes {
		c := &exp.Classes[i]
		for j := range c.Methods {
			c.Methods[j].IsStatic = true
			normalizeMethod(&c.Methods[j])
		}
	}
	for i := range exp.Prototypes {
		p := &exp.Prototypes[i]
		for j := range p.Methods {
			normalizeMethod(&p.Methods[j])
		}
		for j := range p.Variables {
			p.Variables[j].Type = docs.ResolveDisplayName(p.Variables[j].Type, 0)
		}
	}

	if err := docs.Validate(exp.Classes, exp.Prototypes); err != nil {
		return nil, nil, fmt.Errorf("validating descriptor export: %w", err)
	}
	return exp.Classes, exp.Prototypes, nil
}

func normalizeMethod(m *docs.ApiMethod) {
	for i := range m.Signatures {
		s := &m.Signatures[i]
		for j, t := range s.ParamTypes {
			s.ParamTypes[j] = docs.ResolveDisplayName(t, 0)
		}
		s.ReturnTypes = docs.ResolveDisplayNames(s.ReturnTypes)
	}
}

// Save writes descriptors in export format, compressed when path ends in
// ".zst". Type names are written as given.
func Save(path string, classes []docs.ApiClass, prototypes []docs.ApiPrototype) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export{Classes: classes, Prototypes: prototypes}); err != nil {
		return fmt.Errorf("encoding descriptor export: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if !isCompressed(path) {
		if _, err := f.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing export file: %w", err)
		}
		return nil
	}

	w, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		w.Close()
		return fmt.Errorf("writing compressed data: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing zstd writer: %w", err)
	}
	return nil
}
