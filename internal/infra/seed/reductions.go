// Package seed provides the static Reduction collection.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/romainbeka/dashboardsteph/internal/domain/reduction"
	"github.com/romainbeka/dashboardsteph/internal/infra"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed reductions.yaml
var embeddedReductions []byte

var ErrUnsupportedSeedFormat = errs.New("unsupported seed file format")

type seedFile struct {
	Reductions []reduction.Reduction `yaml:"reductions" toml:"reductions"`
}

// ReductionSource serves a collection decoded once at construction.
type ReductionSource struct {
	reductions []reduction.Reduction
}

// NewReductionSource reads path when set, the embedded seed otherwise.
// The format follows the file extension: .yaml, .yml or .toml.
func NewReductionSource(path string, logger *slog.Logger) (*ReductionSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		rs, err := decodeYAML(embeddedReductions)
		if err != nil {
			return nil, infra.WrapRepoErr(logger, infra.KindCorruptData, "failed to decode embedded reductions", err)
		}
		return &ReductionSource{reductions: rs}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindStorageUnavailable, "failed to read reduction seed", err)
	}

	var rs []reduction.Reduction
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		rs, err = decodeYAML(data)
	case ".toml":
		rs, err = decodeTOML(data)
	default:
		return nil, errs.Wrapf(ErrUnsupportedSeedFormat, "%s", path)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindCorruptData, "failed to decode reduction seed", err)
	}

	logger.Info("reduction seed loaded", "path", path, "count", len(rs))
	return &ReductionSource{reductions: rs}, nil
}

func NewReductionSourceFrom(rs []reduction.Reduction) *ReductionSource {
	return &ReductionSource{reductions: rs}
}

// All returns a fresh copy so callers may modify it.
func (s *ReductionSource) All(_ context.Context) ([]reduction.Reduction, error) {
	out := make([]reduction.Reduction, len(s.reductions))
	copy(out, s.reductions)
	return out, nil
}

func decodeYAML(data []byte) ([]reduction.Reduction, error) {
	var f seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return f.Reductions, nil
}

func decodeTOML(data []byte) ([]reduction.Reduction, error) {
	var f seedFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New("unknown keys in seed: " + undecoded[0].String())
	}
	return f.Reductions, nil
}
