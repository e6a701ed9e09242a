package commands

//go:generate mockgen -source=jdr.go -destination=../../../tests/mock/commands/jdr_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"sync"

	"github.com/romainbeka/dashboardsteph/internal/domain/jdr"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
	"github.com/romainbeka/dashboardsteph/internal/usecase/shared"
)

// ImageUpload is the raw binary part of a create request.
type ImageUpload struct {
	Filename string
	Data     []byte
}

type JDRCommands interface {
	Create(ctx context.Context, draft jdr.Draft, image *ImageUpload) (*jdr.JDR, error)
	Delete(ctx context.Context, id int) error
}

// jdrCommandsImpl serializes every read-modify-write of the data file behind
// one mutex so overlapping requests cannot lose each other's updates.
type jdrCommandsImpl struct {
	mu     sync.Mutex
	store  shared.JDRStore
	images shared.ImageStore
	logger *slog.Logger
}

func NewJDRCommands(store shared.JDRStore, images shared.ImageStore, logger *slog.Logger) JDRCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &jdrCommandsImpl{store: store, images: images, logger: logger}
}

func (uc *jdrCommandsImpl) Create(ctx context.Context, draft jdr.Draft, image *ImageUpload) (*jdr.JDR, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if image != nil {
		ref, err := uc.images.Store(ctx, image.Filename, image.Data)
		if err != nil {
			return nil, shared.TranslateRepoErr(err)
		}
		draft.Avatar = &jdr.Avatar{Src: ref}
	}

	entry, err := uc.appendEntry(ctx, draft)
	if err != nil {
		if draft.Avatar != nil && image != nil {
			uc.discardImage(ctx, draft.Avatar.Src)
		}
		return nil, err
	}

	uc.logger.Info("jdr created", "id", entry.ID, "name", entry.Name, "associated", len(entry.AssociatedProducts))
	return entry, nil
}

func (uc *jdrCommandsImpl) appendEntry(ctx context.Context, draft jdr.Draft) (*jdr.JDR, error) {
	records, err := uc.store.Load(ctx)
	if err != nil {
		return nil, shared.TranslateRepoErr(err)
	}

	entry, err := jdr.NewJDR(uc.store.NextID(records), draft)
	if err != nil {
		return nil, err
	}

	records = jdr.LinkAssociated(*entry, records)
	records = append(records, *entry)

	if err := uc.store.Save(ctx, records); err != nil {
		return nil, shared.TranslateRepoErr(err)
	}
	return entry, nil
}

func (uc *jdrCommandsImpl) Delete(ctx context.Context, id int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	records, err := uc.store.Load(ctx)
	if err != nil {
		return shared.TranslateRepoErr(err)
	}

	idx := jdr.FindByID(records, id)
	if idx < 0 {
		return errs.Wrapf(jdr.ErrJDRNotFound, "id %d", id)
	}
	target := records[idx]

	records = jdr.UnlinkAssociated(target, records)
	if err := uc.store.Save(ctx, records); err != nil {
		return shared.TranslateRepoErr(err)
	}

	uc.logger.Info("jdr deleted", "id", target.ID, "name", target.Name)
	return nil
}

func (uc *jdrCommandsImpl) discardImage(ctx context.Context, ref string) {
	if err := uc.images.Remove(context.WithoutCancel(ctx), ref); err != nil {
		uc.logger.Warn("failed to remove orphaned image", "ref", ref, "error", err)
	}
}
