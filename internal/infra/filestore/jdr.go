// Package filestore keeps the catalog as one JSON array on disk.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/romainbeka/dashboardsteph/internal/domain/jdr"
	"github.com/romainbeka/dashboardsteph/internal/infra"

	"github.com/google/uuid"
)

const filePerm = 0o644

type JDRFileStore struct {
	path   string
	logger *slog.Logger
}

func NewJDRFileStore(path string, logger *slog.Logger) *JDRFileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &JDRFileStore{path: path, logger: logger}
}

func (s *JDRFileStore) Path() string { return s.path }

// EnsureFile creates the parent directory and an empty array when the data
// file does not exist yet. An existing file is left untouched.
func (s *JDRFileStore) EnsureFile(ctx context.Context) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return infra.WrapRepoErr(s.logger, infra.KindStorageUnavailable, "failed to stat data file", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to create data directory", err)
	}
	s.logger.Info("initializing empty catalog data file", "path", s.path)
	return s.Save(ctx, []jdr.JDR{})
}

func (s *JDRFileStore) Load(ctx context.Context) ([]jdr.JDR, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStorageUnavailable, "failed to read data file", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorruptData, "data file is not a JSON array", nil)
	}

	records := []jdr.JDR{}
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorruptData, "failed to decode data file", err)
	}
	return records, nil
}

// Save overwrites the whole collection. The array is written to a sibling
// temp file which is then renamed over the data file.
func (s *JDRFileStore) Save(ctx context.Context, records []jdr.JDR) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []jdr.JDR{}
	}

	data, err := encodeRecords(records)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to encode records", err)
	}

	dir, base := filepath.Split(s.path)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
	if err := writeSync(tmp, data); err != nil {
		_ = os.Remove(tmp)
		return infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to write temp data file", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to replace data file", err)
	}
	return nil
}

func (s *JDRFileStore) NextID(records []jdr.JDR) int {
	return jdr.NextID(records)
}

func writeSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// encodeRecords writes 2-space indented JSON with &, < and > left as is.
func encodeRecords(records []jdr.JDR) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
