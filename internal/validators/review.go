// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-review-keeper/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID               = "id"
	FieldPlaylistID       = "playlist_id"
	FieldVersionID        = "version_id"
	FieldName             = "name"
	FieldKind             = "kind"
	FieldSyncState        = "sync_state"
	FieldRevision         = "revision"
	FieldMIMEType         = "mime_type"
	FieldData             = "data"
	FieldContent          = "content"
	FieldRemotePlaylistID = "remote_playlist_id"
)

// MaxAttachmentSize bounds a single attachment.
const MaxAttachmentSize = 50 << 20

const maxNameLength = 255

var (
	allowedKinds = []any{
		models.KindList,
		models.KindReviewSession,
		models.KindQuickNotes,
	}
	allowedSyncStates = []any{
		models.SyncStateLocalOnly,
		models.SyncStatePendingSync,
		models.SyncStateSyncing,
		models.SyncStateSynced,
		models.SyncStateSyncFailed,
	}
)

// ReviewValidator implements [Validator] for playlists, version records,
// remote versions, attachment uploads and note requests. Both value and
// pointer forms are accepted.
type ReviewValidator struct {
}

// NewReviewValidator constructs a new ReviewValidator and returns it as the
// Validator interface.
func NewReviewValidator() Validator {
	return &ReviewValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields are omitted
// every rule of that type applies.
func (v *ReviewValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Playlist:
		return v.validatePlaylist(&value, fields...)
	case *models.Playlist:
		return v.validatePlaylist(value, fields...)

	case models.Version:
		return v.validateVersion(&value, fields...)
	case *models.Version:
		return v.validateVersion(value, fields...)

	case models.RemoteVersion:
		return v.validateRemoteVersion(&value, fields...)
	case *models.RemoteVersion:
		return v.validateRemoteVersion(value, fields...)

	case models.AttachmentUpload:
		return v.validateAttachmentUpload(&value, fields...)
	case *models.AttachmentUpload:
		return v.validateAttachmentUpload(value, fields...)

	case models.NoteRequest:
		return v.validateNoteRequest(&value, fields...)
	case *models.NoteRequest:
		return v.validateNoteRequest(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// selectRules picks the field rules named by fields, or all of them when
// fields is empty.
func selectRules(all map[string]*validation.FieldRules, order []string, fields []string) ([]*validation.FieldRules, error) {
	if len(fields) == 0 {
		fields = order
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		r, ok := all[f]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func validateWith(sentinel error, structPtr any, all map[string]*validation.FieldRules, order []string, fields []string) error {
	rules, err := selectRules(all, order, fields)
	if err != nil {
		return err
	}
	if err := validation.ValidateStruct(structPtr, rules...); err != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return nil
}

func (v *ReviewValidator) validatePlaylist(p *models.Playlist, fields ...string) error {
	all := map[string]*validation.FieldRules{
		FieldID:        validation.Field(&p.ID, validation.Required),
		FieldName:      validation.Field(&p.Name, validation.Required, validation.Length(1, maxNameLength)),
		FieldKind:      validation.Field(&p.Kind, validation.Required, validation.In(allowedKinds...)),
		FieldSyncState: validation.Field(&p.SyncState, validation.Required, validation.In(allowedSyncStates...)),
	}
	order := []string{FieldID, FieldName, FieldKind, FieldSyncState}

	if err := validateWith(ErrInvalidPlaylist, p, all, order, fields); err != nil {
		return err
	}

	if len(fields) == 0 && p.IsQuickNotes() && p.SyncState != models.SyncStateLocalOnly {
		return fmt.Errorf("%w: quick notes playlist must stay local-only", ErrInvalidPlaylist)
	}
	return nil
}

func (v *ReviewValidator) validateVersion(ver *models.Version, fields ...string) error {
	all := map[string]*validation.FieldRules{
		FieldPlaylistID: validation.Field(&ver.PlaylistID, validation.Required),
		FieldVersionID:  validation.Field(&ver.VersionID, validation.Required),
		FieldName:       validation.Field(&ver.Name, validation.Length(0, maxNameLength)),
		FieldRevision:   validation.Field(&ver.Revision, validation.Min(0)),
	}
	order := []string{FieldPlaylistID, FieldVersionID, FieldName, FieldRevision}

	return validateWith(ErrInvalidVersion, ver, all, order, fields)
}

func (v *ReviewValidator) validateRemoteVersion(r *models.RemoteVersion, fields ...string) error {
	all := map[string]*validation.FieldRules{
		FieldID:       validation.Field(&r.ID, validation.Required),
		FieldRevision: validation.Field(&r.Revision, validation.Min(0)),
	}
	order := []string{FieldID, FieldRevision}

	return validateWith(ErrInvalidVersion, r, all, order, fields)
}

func (v *ReviewValidator) validateAttachmentUpload(a *models.AttachmentUpload, fields ...string) error {
	all := map[string]*validation.FieldRules{
		FieldName:     validation.Field(&a.Name, validation.Required, validation.Length(1, maxNameLength)),
		FieldMIMEType: validation.Field(&a.MIMEType, validation.Required, validation.By(isMIMEType)),
		FieldData:     validation.Field(&a.Data, validation.Required, validation.Length(1, MaxAttachmentSize)),
	}
	order := []string{FieldName, FieldMIMEType, FieldData}

	return validateWith(ErrInvalidAttachment, a, all, order, fields)
}

func (v *ReviewValidator) validateNoteRequest(n *models.NoteRequest, fields ...string) error {
	all := map[string]*validation.FieldRules{
		FieldRemotePlaylistID: validation.Field(&n.PlaylistRemoteID, validation.Required),
		FieldVersionID:        validation.Field(&n.VersionID, validation.Required),
		FieldContent: validation.Field(&n.Content,
			validation.When(len(n.Attachments) == 0, validation.By(notBlank)),
		),
	}
	order := []string{FieldRemotePlaylistID, FieldVersionID, FieldContent}

	return validateWith(ErrInvalidNote, n, all, order, fields)
}

func isMIMEType(value any) error {
	s, _ := value.(string)
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return validation.NewError("validation_mime_type", "must be a type/subtype MIME type")
	}
	return nil
}

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "cannot be blank")
	}
	return nil
}
