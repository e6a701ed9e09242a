package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/romainbeka/dashboardsteph/internal/infra"
	"github.com/romainbeka/dashboardsteph/internal/pkg/clock"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrInvalidFilename = errs.Mark(errs.New("invalid image filename"), errs.ErrInvalidRequest)
	ErrOutsideRoot     = errs.Mark(errs.New("path escapes the uploads root"), errs.ErrInvalidRequest)
)

// ImageStore writes uploaded images under a fixed root and hands out
// web-relative references of the form <urlPrefix>/<epoch-millis>_<filename>.
type ImageStore struct {
	root      string
	urlPrefix string
	clock     clock.Clock
	logger    *slog.Logger
}

func NewImageStore(root, urlPrefix string, clk clock.Clock, logger *slog.Logger) *ImageStore {
	if logger == nil {
		logger = slog.Default()
	}
	if urlPrefix == "" {
		urlPrefix = "/uploads"
	}
	return &ImageStore{
		root:      root,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		clock:     clk,
		logger:    logger,
	}
}

func (s *ImageStore) Root() string { return s.root }

// EnsureDir creates the uploads root. Safe to call repeatedly.
func (s *ImageStore) EnsureDir() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to create uploads directory", err)
	}
	return nil
}

func (s *ImageStore) Store(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	base, err := cleanFilename(filename)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d_%s", s.clock.Now().UnixMilli(), base)
	target := filepath.Join(s.root, name)

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to create image file", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(target)
		return "", infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to write image file", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return "", infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to close image file", err)
	}

	s.logger.Info("image stored",
		"file", name,
		"size", len(data),
		"detected_type", mimetype.Detect(data).String(),
	)
	return path.Join(s.urlPrefix, name), nil
}

// Remove deletes the file behind a reference returned by Store.
func (s *ImageStore) Remove(_ context.Context, ref string) error {
	full, err := s.Resolve(strings.TrimPrefix(ref, s.urlPrefix))
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to remove image file", err)
	}
	return nil
}

// Resolve maps a path relative to the uploads root onto an existing regular
// file. Paths escaping the root fail with ErrOutsideRoot.
func (s *ImageStore) Resolve(rel string) (string, error) {
	rel = strings.TrimLeft(filepath.ToSlash(rel), "/")
	if rel == "" {
		return "", ErrInvalidFilename
	}
	cleaned := path.Clean(rel)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrOutsideRoot
	}

	full := filepath.Join(s.root, filepath.FromSlash(cleaned))
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", infra.WrapRepoErr(s.logger, infra.KindNotFound, "image not found", err)
		}
		return "", infra.WrapRepoErr(s.logger, infra.KindStorageUnavailable, "failed to stat image", err)
	}
	if info.IsDir() {
		return "", infra.WrapRepoErr(s.logger, infra.KindNotFound, "image not found", nil)
	}
	return full, nil
}

// ContentType sniffs the stored file.
func (s *ImageStore) ContentType(full string) string {
	mt, err := mimetype.DetectFile(full)
	if err != nil {
		return "application/octet-stream"
	}
	return mt.String()
}

func cleanFilename(filename string) (string, error) {
	base := filepath.Base(filepath.Clean("/" + filepath.ToSlash(strings.TrimSpace(filename))))
	if base == "" || base == "." || base == "/" || base == string(filepath.Separator) {
		return "", ErrInvalidFilename
	}
	return base, nil
}
