package codec_test

import (
	"testing"

	"github.com/viharri/phuffman/codec"
	_ "github.com/viharri/phuffman/decode/parallel"
	_ "github.com/viharri/phuffman/decode/sequential"
)

func TestBackendRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
	}{
		{"Get sequential", "sequential", true},
		{"Get parallel", "parallel", true},
		{"Unknown backend", "gpu", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, err := codec.Get(tt.key)
			if tt.wantFound {
				if err != nil {
					t.Fatalf("Get(%q) failed: %v", tt.key, err)
				}
				if backend.Name() != tt.key {
					t.Errorf("Name: got %q, want %q", backend.Name(), tt.key)
				}
				return
			}
			if err != codec.ErrBackendNotFound {
				t.Errorf("Get(%q): got %v, want %v", tt.key, err, codec.ErrBackendNotFound)
			}
		})
	}
}

func TestRegistryList(t *testing.T) {
	backends := codec.List()
	if len(backends) < 2 {
		t.Fatalf("expected at least 2 registered backends, got %d", len(backends))
	}
	names := make(map[string]bool)
	for _, b := range backends {
		names[b.Name()] = true
	}
	for _, want := range []string{"sequential", "parallel"} {
		if !names[want] {
			t.Errorf("backend %q not listed", want)
		}
	}
}
