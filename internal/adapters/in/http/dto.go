package http

import (
	"errors"
	"strings"
	"time"

	"proteseflow/internal/core/application/usecases/queries"
	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/generated/servers"
	"proteseflow/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// toID converts a bound path parameter into a domain identifier.
func toID(raw servers.ID) (kernel.ID, error) {
	id := kernel.ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

func profileOf(username, email, phone string) user.Profile {
	return user.Profile{Username: username, Email: email, Phone: phone}
}

// orderDetails validates the request and reports every field problem at once.
// dueErr carries a due date that could not be parsed before reaching here.
func orderDetails(r servers.OrderRequest, dueErr error) (order.Details, error) {
	sex, sexErr := order.ParseSex(string(r.PatientSex))
	teeth, teethErr := order.ParseToothElements(r.ToothElements)

	var due *time.Time
	if r.DueDate != nil && !r.DueDate.Time.IsZero() {
		due = &r.DueDate.Time
	}

	if err := errors.Join(sexErr, teethErr, dueErr); err != nil {
		return order.Details{}, err
	}

	return order.NewDetails(order.Details{
		PatientName:   r.PatientName,
		PatientSex:    sex,
		ServiceType:   r.ServiceType,
		ToothElements: teeth,
		Color:         r.Color,
		DueDate:       due,
		Notes:         r.Notes,
	})
}

// parseDueDate reads a YYYY-MM-DD form value. An empty value means no due date.
func parseDueDate(raw string) (*openapi_types.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("due_date", err)
	}
	return &openapi_types.Date{Time: d}, nil
}

func userResponse(u *user.User) servers.User {
	return servers.User{
		Id:          u.ID().Int64(),
		Username:    u.Username(),
		Email:       u.Email(),
		Phone:       u.Phone(),
		Role:        servers.UserRole(u.Role().String()),
		RoleLabel:   u.Role().Label(),
		License:     u.License(),
		IsSuperuser: u.IsSuperuser(),
		Confirmed:   u.IsConfirmed(),
		Active:      u.IsActive(),
		Archived:    u.IsArchived(),
		JoinedAt:    u.JoinedAt(),
	}
}

func userSummaryResponse(u queries.UserSummary) servers.User {
	return servers.User{
		Id:          u.ID.Int64(),
		Username:    u.Username,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        servers.UserRole(u.Role.String()),
		RoleLabel:   u.Role.Label(),
		License:     u.License,
		IsSuperuser: u.IsSuperuser,
		Confirmed:   u.Confirmed,
		Active:      u.State == user.Active,
		Archived:    u.State == user.Archived,
		JoinedAt:    u.JoinedAt,
	}
}

func dueDateOf(due *time.Time) *openapi_types.Date {
	if due == nil {
		return nil
	}
	return &openapi_types.Date{Time: *due}
}

func orderSummaryResponse(o queries.OrderSummary) servers.OrderSummary {
	return servers.OrderSummary{
		Id:              o.ID.Int64(),
		DentistId:       o.DentistID.Int64(),
		DentistUsername: o.DentistUsername,
		PatientName:     o.PatientName,
		ServiceType:     o.ServiceType,
		ToothElements:   o.ToothElements,
		Status:          servers.Status(o.Status.String()),
		StatusLabel:     o.Status.Label(),
		DueDate:         dueDateOf(o.DueDate),
		CreatedAt:       o.CreatedAt,
	}
}

func orderSummariesResponse(orders []queries.OrderSummary) []servers.OrderSummary {
	result := make([]servers.OrderSummary, 0, len(orders))
	for _, o := range orders {
		result = append(result, orderSummaryResponse(o))
	}
	return result
}

func orderResponse(v queries.OrderView) servers.Order {
	attachments := make([]servers.Attachment, 0, len(v.Attachments))
	for _, a := range v.Attachments {
		attachments = append(attachments, servers.Attachment{
			Id:          a.ID.Int64(),
			Name:        a.Name,
			ContentType: a.ContentType,
			Size:        a.Size,
			Description: a.Description,
			UploadedAt:  a.UploadedAt,
		})
	}

	return servers.Order{
		Id:              v.ID.Int64(),
		DentistId:       v.DentistID.Int64(),
		DentistUsername: v.DentistUsername,
		PatientName:     v.PatientName,
		PatientSex:      servers.OrderPatientSex(v.PatientSex.String()),
		ServiceType:     v.ServiceType,
		ToothElements:   v.ToothElements,
		Color:           v.Color,
		Notes:           v.Notes,
		Status:          servers.Status(v.Status.String()),
		StatusLabel:     v.Status.Label(),
		DueDate:         dueDateOf(v.DueDate),
		CreatedAt:       v.CreatedAt,
		CanEditStatus:   v.CanEditStatus,
		CanDelete:       v.CanDelete,
		Attachments:     attachments,
	}
}

func dashboardResponse(d queries.Dashboard) servers.Dashboard {
	counts := make(map[string]int, len(d.Counts))
	for status, n := range d.Counts {
		counts[status.String()] = n
	}
	return servers.Dashboard{
		Recent: orderSummariesResponse(d.Recent),
		Counts: counts,
		Total:  d.Total,
	}
}
