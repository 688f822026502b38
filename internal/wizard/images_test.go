package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePreviewer counts acquires and releases so tests can assert the
// acquire/release pairing invariant.
type fakePreviewer struct {
	acquired  int
	released  int
	failAfter int // fail the Nth acquire (1-based); 0 never fails
	live      map[string]bool
}

func newFakePreviewer() *fakePreviewer {
	return &fakePreviewer{live: map[string]bool{}}
}

func (p *fakePreviewer) AcquirePreview(_ context.Context, draftID, name string) (string, error) {
	p.acquired++
	if p.failAfter > 0 && p.acquired >= p.failAfter {
		return "", errors.New("preview backend unavailable")
	}
	ref := fmt.Sprintf("/previews/%s/%s", draftID, name)
	p.live[ref] = true
	return ref, nil
}

func (p *fakePreviewer) ReleasePreview(_ context.Context, ref string) error {
	p.released++
	delete(p.live, ref)
	return nil
}

func (p *fakePreviewer) liveCount() int { return len(p.live) }

func TestAttachImagesWithinCap(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	p := newFakePreviewer()

	require.NoError(t, d.AttachImages(context.Background(), p, "a.jpg", "b.jpg", "c.jpg"))
	assert.Len(t, d.Images, 3)
	assert.Equal(t, 3, p.liveCount())
}

func TestAttachImagesCapIsAllOrNothing(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	p := newFakePreviewer()
	require.NoError(t, d.AttachImages(context.Background(), p, "a.jpg", "b.jpg", "c.jpg", "d.jpg"))

	// 4 + 2 exceeds the cap of 5: nothing from the batch may be added.
	err := d.AttachImages(context.Background(), p, "e.jpg", "f.jpg")
	require.Error(t, err)
	assert.Len(t, d.Images, 4)
	assert.Equal(t, 4, p.liveCount())
	assert.NotEmpty(t, d.LastError)

	// A batch that fits exactly still goes through.
	require.NoError(t, d.AttachImages(context.Background(), p, "e.jpg"))
	assert.Len(t, d.Images, MaxImages)
}

func TestAttachImagesRollsBackBatchOnAcquireFailure(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	p := newFakePreviewer()
	p.failAfter = 3 // third acquire fails

	err := d.AttachImages(context.Background(), p, "a.jpg", "b.jpg", "c.jpg")
	require.Error(t, err)
	assert.Empty(t, d.Images)
	// The two acquired previews from the failed batch were released.
	assert.Zero(t, p.liveCount())
}

func TestRemoveImageReleasesPreview(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	p := newFakePreviewer()
	require.NoError(t, d.AttachImages(context.Background(), p, "a.jpg", "b.jpg"))

	id := d.Images[0].ID
	require.NoError(t, d.RemoveImage(context.Background(), p, id))
	assert.Len(t, d.Images, 1)
	assert.Equal(t, 1, p.liveCount())

	err := d.RemoveImage(context.Background(), p, "no-such-image")
	assert.Error(t, err)
}

func TestCloseReleasesEverything(t *testing.T) {
	t.Parallel()

	d := NewDraft("user-1")
	p := newFakePreviewer()
	require.NoError(t, d.AttachImages(context.Background(), p, "a.jpg", "b.jpg", "c.jpg"))

	d.Close(context.Background(), p)
	assert.Empty(t, d.Images)
	assert.Zero(t, p.liveCount())
	assert.Equal(t, p.acquired, p.released)
}
