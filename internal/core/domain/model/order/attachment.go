package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/pkg/errs"
)

const (
	// DefaultAttachmentDescription is used when the uploader leaves the description blank.
	DefaultAttachmentDescription = "Arquivo STL"

	maxDescriptionLength = 100
	maxFileNameLength    = 255
)

// File describes a blob already written to file storage.
type File struct {
	// Ref is the storage key, e.g. "arquivos_protese/2025/03/<uuid>-coroa.stl".
	Ref         string
	Name        string
	ContentType string
	Size        int64
}

// Attachment is a file sent together with an order. It lives and dies with its order.
type Attachment struct {
	id          kernel.ID
	file        File
	description string
	uploadedAt  time.Time
}

// NewAttachment wraps an uploaded file. A blank description becomes "Arquivo STL".
func NewAttachment(file File, description string) (*Attachment, error) {
	a := &Attachment{uploadedAt: time.Now().UTC()}
	if err := errors.Join(a.setFile(file), a.setDescription(description)); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreAttachment rebuilds an attachment loaded from the store.
func RestoreAttachment(id kernel.ID, file File, description string, uploadedAt time.Time) (*Attachment, error) {
	a := &Attachment{uploadedAt: uploadedAt}
	if err := errors.Join(id.Validate(), a.setFile(file), a.setDescription(description)); err != nil {
		return nil, err
	}
	a.id = id
	return a, nil
}

// Identify records the identifier assigned by the store.
func (a *Attachment) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Attachment) ID() kernel.ID         { return a.id }
func (a *Attachment) File() File            { return a.file }
func (a *Attachment) Description() string   { return a.description }
func (a *Attachment) UploadedAt() time.Time { return a.uploadedAt }

func (a *Attachment) setFile(file File) error {
	var problems []error
	if strings.TrimSpace(file.Ref) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("file"))
	}
	if n := utf8.RuneCountInString(file.Name); n > maxFileNameLength {
		problems = append(problems, errs.NewValueIsOutOfRangeError("file", n, 0, maxFileNameLength))
	}
	if file.Size < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("file", fmt.Errorf("size %d is negative", file.Size)))
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}
	a.file = file
	return nil
}

func (a *Attachment) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultAttachmentDescription
	}
	if n := utf8.RuneCountInString(description); n > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description", n, 0, maxDescriptionLength)
	}
	a.description = description
	return nil
}
