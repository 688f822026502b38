package wizard

import (
	"context"

	"servicehub_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// MaxImages caps the attachments on a single draft.
const MaxImages = 5

// Attachment is one accepted image with its acquired preview resource.
type Attachment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PreviewRef string `json:"previewRef"`
}

// Previewer acquires and releases preview resources for attached images.
// Every acquired preview must be released exactly once: on image removal
// or on draft teardown.
type Previewer interface {
	AcquirePreview(ctx context.Context, draftID, name string) (ref string, err error)
	ReleasePreview(ctx context.Context, ref string) error
}

// AttachImages adds a batch of images to the draft. If the batch would
// push the draft past MaxImages the whole batch is rejected and no preview
// is left acquired; there is no partial add.
func (d *Draft) AttachImages(ctx context.Context, p Previewer, names ...string) error {
	if len(d.Images)+len(names) > MaxImages {
		err := apperrors.ErrImageLimitExceeded
		d.LastError = err.Error()
		return err
	}

	acquired := make([]Attachment, 0, len(names))
	for _, name := range names {
		ref, err := p.AcquirePreview(ctx, d.ID, name)
		if err != nil {
			// Roll back previews acquired for this batch.
			for _, a := range acquired {
				_ = p.ReleasePreview(ctx, a.PreviewRef)
			}
			d.LastError = err.Error()
			return err
		}
		acquired = append(acquired, Attachment{
			ID:         uuid.NewString(),
			Name:       name,
			PreviewRef: ref,
		})
	}

	d.Images = append(d.Images, acquired...)
	d.LastError = ""
	d.touch()
	return nil
}

// RemoveImage drops one attachment and releases its preview.
func (d *Draft) RemoveImage(ctx context.Context, p Previewer, imageID string) error {
	for i, img := range d.Images {
		if img.ID != imageID {
			continue
		}
		if err := p.ReleasePreview(ctx, img.PreviewRef); err != nil {
			return err
		}
		d.Images = append(d.Images[:i], d.Images[i+1:]...)
		d.touch()
		return nil
	}
	return apperrors.ErrNotFound(nil)
}

// Close releases every remaining preview. Called on wizard teardown and
// after a successful submission.
func (d *Draft) Close(ctx context.Context, p Previewer) {
	for _, img := range d.Images {
		_ = p.ReleasePreview(ctx, img.PreviewRef)
	}
	d.Images = nil
}
