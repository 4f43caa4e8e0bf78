package store

import (
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"github.com/susan-kimemia/alx-backend-storage/internal/config"
)

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("bogus", ProviderConfig{})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
}

func TestRegisteredProviders(t *testing.T) {
	names := RegisteredProviders()
	for _, want := range []string{"memory", "redis"} {
		if !slices.Contains(names, want) {
			t.Errorf("Expected provider %q in %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Expected sorted provider names, got %v", names)
	}
}

func TestFromConfig_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Provider = "memory"

	s, err := FromConfig(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	defer s.Close()
}
