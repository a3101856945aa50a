package service

import (
	"sync"

	"github.com/MKhiriev/go-review-keeper/internal/utils"
	"github.com/MKhiriev/go-review-keeper/models"
)

const previewHandlePrefix = "preview-"

// PreviewTracker owns the preview handles handed out for attachments. Every
// handle is created by Acquire and must be given back through Release or
// ReleaseAll; Live reports the handles still outstanding.
type PreviewTracker struct {
	ids *utils.UUIDGenerator

	mu           sync.Mutex
	byAttachment map[string]string
	byHandle     map[string]models.Attachment
}

func NewPreviewTracker() *PreviewTracker {
	return &PreviewTracker{
		ids:          utils.NewUUIDGenerator(),
		byAttachment: make(map[string]string),
		byHandle:     make(map[string]models.Attachment),
	}
}

// Acquire returns the handle of a, creating it on first use.
func (t *PreviewTracker) Acquire(a models.Attachment) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if h, ok := t.byAttachment[a.ID]; ok {
		a.PreviewHandle = h
		t.byHandle[h] = a
		return h
	}

	h := previewHandlePrefix + t.ids.Generate()
	a.PreviewHandle = h
	t.byAttachment[a.ID] = h
	t.byHandle[h] = a
	return h
}

// Release revokes the handle of attachmentID. It reports whether a handle
// was live.
func (t *PreviewTracker) Release(attachmentID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.byAttachment[attachmentID]
	if !ok {
		return false
	}
	delete(t.byAttachment, attachmentID)
	delete(t.byHandle, h)
	return true
}

// ReleaseAll revokes every handle and returns how many were live.
func (t *PreviewTracker) ReleaseAll() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.byHandle)
	clear(t.byAttachment)
	clear(t.byHandle)
	return n
}

// Resolve returns the attachment behind a live handle.
func (t *PreviewTracker) Resolve(handle string) (models.Attachment, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	a, ok := t.byHandle[handle]
	return a, ok
}

// Live returns the number of outstanding handles.
func (t *PreviewTracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.byHandle)
}
