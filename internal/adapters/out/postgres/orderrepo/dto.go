// Package orderrepo maps the order aggregate to the orders and attachments tables.
package orderrepo

import (
	"time"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
)

// OrderDTO is the row stored in "orders". The foreign key to users is added by
// postgres.Migrate so that deleting an account cascades to its orders.
type OrderDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	DentistID     int64           `gorm:"not null;index"`
	PatientName   string          `gorm:"type:varchar(100);not null;index"`
	PatientSex    string          `gorm:"type:varchar(1);not null"`
	ServiceType   string          `gorm:"type:varchar(100);not null"`
	ToothElements string          `gorm:"type:varchar(100);not null"`
	Color         string          `gorm:"type:varchar(50);not null;default:''"`
	DueDate       *time.Time      `gorm:"type:date"`
	Notes         string          `gorm:"type:text;not null;default:''"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	Version       int             `gorm:"not null"`
	Attachments   []AttachmentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AttachmentDTO is the row stored in "attachments".
type AttachmentDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     int64     `gorm:"not null;index"`
	FileRef     string    `gorm:"type:varchar(255);not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null;default:''"`
	Size        int64     `gorm:"not null;default:0"`
	Description string    `gorm:"type:varchar(100);not null"`
	UploadedAt  time.Time `gorm:"not null"`
}

func (AttachmentDTO) TableName() string {
	return "attachments"
}

// fromDomain builds the row for the next write, carrying the version the write will
// store.
func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()
	attachments := make([]AttachmentDTO, 0, len(o.Attachments()))
	for _, a := range o.Attachments() {
		attachments = append(attachments, AttachmentDTO{
			ID:          a.ID().Int64(),
			OrderID:     o.ID().Int64(),
			FileRef:     a.File().Ref,
			FileName:    a.File().Name,
			ContentType: a.File().ContentType,
			Size:        a.File().Size,
			Description: a.Description(),
			UploadedAt:  a.UploadedAt(),
		})
	}

	return OrderDTO{
		ID:            o.ID().Int64(),
		DentistID:     o.DentistID().Int64(),
		PatientName:   d.PatientName,
		PatientSex:    d.PatientSex.String(),
		ServiceType:   d.ServiceType,
		ToothElements: d.ToothElements.String(),
		Color:         d.Color,
		DueDate:       d.DueDate,
		Notes:         d.Notes,
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		Version:       o.Version() + 1,
		Attachments:   attachments,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	sex, err := order.ParseSex(dto.PatientSex)
	if err != nil {
		return nil, err
	}

	teeth, err := order.ParseToothElements(dto.ToothElements)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	attachments := make([]*order.Attachment, 0, len(dto.Attachments))
	for _, aDto := range dto.Attachments {
		a, aErr := attachmentToDomain(aDto)
		if aErr != nil {
			return nil, aErr
		}
		attachments = append(attachments, a)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:        kernel.ID(dto.ID),
		DentistID: kernel.ID(dto.DentistID),
		Details: order.Details{
			PatientName:   dto.PatientName,
			PatientSex:    sex,
			ServiceType:   dto.ServiceType,
			ToothElements: teeth,
			Color:         dto.Color,
			DueDate:       dto.DueDate,
			Notes:         dto.Notes,
		},
		Status:      status,
		Attachments: attachments,
		CreatedAt:   dto.CreatedAt,
		Version:     dto.Version,
	})
}

func attachmentToDomain(dto AttachmentDTO) (*order.Attachment, error) {
	return order.RestoreAttachment(
		kernel.ID(dto.ID),
		order.File{
			Ref:         dto.FileRef,
			Name:        dto.FileName,
			ContentType: dto.ContentType,
			Size:        dto.Size,
		},
		dto.Description,
		dto.UploadedAt,
	)
}
