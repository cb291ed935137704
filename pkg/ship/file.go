package ship

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FileExt is the extension of native design files.
const FileExt = ".ship"

// ImportExt is the extension of SpringSharp 3 files handled by pkg/legacy.
const ImportExt = ".sship"

// fileVersion is the current design file format.
const fileVersion = 1

var (
	// ErrIncompatibleVersion marks a design file written by a format this
	// build cannot read.
	ErrIncompatibleVersion = errors.New("incompatible ship file version")

	// ErrParse marks a design file that is versioned correctly but does
	// not decode.
	ErrParse = errors.New("malformed ship file")
)

type versionHeader struct {
	Version int `yaml:"version"`
}

// Load reads a design file. The file is a two-document YAML stream: a
// version header followed by the ship record.
func Load(path string) (*Ship, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a design from a stream. See Load.
func Read(r io.Reader) (*Ship, error) {
	dec := yaml.NewDecoder(r)

	var hdr versionHeader
	if err := dec.Decode(&hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if hdr.Version != fileVersion {
		return nil, fmt.Errorf("%w: got version %d, want %d",
			ErrIncompatibleVersion, hdr.Version, fileVersion)
	}

	s := New()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return s, nil
}

// Save writes the design to path, replacing any existing file.
func (s *Ship) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes the design as a two-document YAML stream.
func (s *Ship) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(versionHeader{Version: fileVersion}); err != nil {
		return err
	}
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
