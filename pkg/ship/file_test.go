package ship

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	s := New()
	s.Name = "Inflexible"
	s.Country = "Great Britain"
	s.Kind = "Battleship"
	s.Year = 1896
	s.Hull = testHull()
	s.Batteries[0].Num = 4
	s.Batteries[0].Diam = 12
	s.Batteries[0].Len = 35
	s.Notes = []string{"design study"}

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("round trip changed the record:\nwrote %+v\nread  %+v", s, got)
	}
}

func TestFileRoundTripDefaults(t *testing.T) {
	s := New()

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("round trip changed the default record:\nwrote %+v\nread  %+v", s, got)
	}
}

func TestReadUnknownVersion(t *testing.T) {
	in := "version: 99\n---\nname: x\n"
	_, err := Read(strings.NewReader(in))
	if !errors.Is(err, ErrIncompatibleVersion) {
		t.Errorf("expected ErrIncompatibleVersion, got %v", err)
	}
}

func TestReadGarbage(t *testing.T) {
	_, err := Read(strings.NewReader("{{{not yaml"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}
