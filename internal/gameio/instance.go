package gameio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// Load reads a game description from disk in the form matching its kind.
func Load(path string, kind domain.Kind) (*domain.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open game description: %w", err)
	}
	defer f.Close()

	if kind == domain.KindEnergy {
		return DecodeEnergy(f)
	}
	return DecodeDigraph(f, kind)
}

// Ext returns the instance file extension for a game kind.
func Ext(kind domain.Kind) string {
	if kind == domain.KindEnergy {
		return ".json"
	}
	return ".dot"
}

// InstancePath names the scratch file for one trial. Keying the name by the
// bit string keeps concurrent workers from colliding.
func InstancePath(dir string, kind domain.Kind, a domain.Assignment) string {
	return filepath.Join(dir, "game_"+string(a)+Ext(kind))
}

// WriteInstance specializes base with the assignment's owners and writes the
// concrete instance to its scratch path, which it returns. The base graph is
// never touched. Callers remove the file once the trial completes.
func WriteInstance(dir string, base *domain.Graph, a domain.Assignment) (string, error) {
	inst, err := base.Apply(a)
	if err != nil {
		return "", err
	}

	path := InstancePath(dir, base.Kind(), a)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create instance file: %w", err)
	}

	if base.Kind() == domain.KindEnergy {
		err = EncodeEnergy(f, inst)
	} else {
		err = EncodeDigraph(f, inst)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write instance file: %w", err)
	}
	return path, nil
}
