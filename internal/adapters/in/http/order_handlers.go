package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"proteseflow/internal/core/application/usecases/commands"
	"proteseflow/internal/core/application/usecases/queries"
	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/core/domain/model/user"
	"proteseflow/internal/core/ports"
	"proteseflow/internal/generated/servers"
	"proteseflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	query, err := queries.NewGetDashboardQuery(actorFrom(c))
	if err != nil {
		return err
	}

	dashboard, err := s.h.GetDashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse(dashboard))
}

// ListOrders handles GET /api/v1/orders?busca=&dentista=&ordenar=.
func (s *Server) ListOrders(c echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(
		actorFrom(c),
		params.Busca,
		kernel.ID(params.Dentista),
		queries.ParseOrderSort(params.Ordenar),
	)
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderSummariesResponse(orders))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(c echo.Context, rawID servers.ID) error {
	id, err := toID(rawID)
	if err != nil {
		return err
	}
	return s.respondWithOrder(c, http.StatusOK, actorFrom(c), id)
}

// CreateOrder handles the multipart POST /api/v1/orders. Files are sent as repeated
// "files" parts with an optional "descriptions" value per file.
func (s *Server) CreateOrder(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "expected a multipart form")
	}

	due, dueErr := parseDueDate(c.FormValue("due_date"))
	req := servers.OrderRequest{
		PatientName:   c.FormValue("patient_name"),
		PatientSex:    servers.OrderRequestPatientSex(c.FormValue("patient_sex")),
		ServiceType:   c.FormValue("service_type"),
		ToothElements: c.FormValue("tooth_elements"),
		Color:         c.FormValue("color"),
		DueDate:       due,
		Notes:         c.FormValue("notes"),
	}

	var dentistID kernel.ID
	var dentistErr error
	if raw := strings.TrimSpace(c.FormValue("dentist_id")); raw != "" {
		if dentistID, dentistErr = kernel.IDFromString(raw); dentistErr != nil {
			dentistErr = errs.NewValueIsInvalidErrorWithCause("dentist_id", dentistErr)
		}
	}

	details, detailsErr := orderDetails(req, dueErr)
	if err = errors.Join(dentistErr, detailsErr); err != nil {
		return err
	}

	uploads, closeAll, err := openUploads(form)
	if err != nil {
		return err
	}
	defer closeAll()

	actor := actorFrom(c)
	cmd, err := commands.NewCreateOrderCommand(actor, dentistID, details, uploads)
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.log.Info().
		Int64("order_id", o.ID().Int64()).
		Int64("dentist_id", o.DentistID().Int64()).
		Int("attachments", len(o.Attachments())).
		Msg("order created")
	return s.respondWithOrder(c, http.StatusCreated, actor, o.ID())
}

// EditOrder handles PUT /api/v1/orders/{id}.
func (s *Server) EditOrder(c echo.Context, rawID servers.ID) error {
	id, err := toID(rawID)
	if err != nil {
		return err
	}

	var req servers.EditOrderJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	details, err := orderDetails(req, nil)
	if err != nil {
		return err
	}

	actor := actorFrom(c)
	cmd, err := commands.NewEditOrderCommand(actor, id, details)
	if err != nil {
		return err
	}

	if _, err = s.h.EditOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithOrder(c, http.StatusOK, actor, id)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(c echo.Context, rawID servers.ID) error {
	id, err := toID(rawID)
	if err != nil {
		return err
	}

	var req servers.ChangeOrderStatusJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	status, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return err
	}

	actor := actorFrom(c)
	cmd, err := commands.NewChangeOrderStatusCommand(actor, id, status)
	if err != nil {
		return err
	}

	o, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.log.Info().
		Int64("order_id", o.ID().Int64()).
		Str("status", o.Status().String()).
		Int64("by", actor.ID().Int64()).
		Msg("order status changed")
	return s.respondWithOrder(c, http.StatusOK, actor, id)
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(c echo.Context, rawID servers.ID) error {
	id, err := toID(rawID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(actorFrom(c), id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DownloadAttachment handles GET /api/v1/orders/{id}/attachments/{attachmentId} by
// redirecting to a short-lived link.
func (s *Server) DownloadAttachment(c echo.Context, rawID servers.ID, rawAttachmentID int64) error {
	orderID, err := toID(rawID)
	if err != nil {
		return err
	}
	attachmentID, err := toID(rawAttachmentID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAttachmentURLQuery(actorFrom(c), orderID, attachmentID)
	if err != nil {
		return err
	}

	link, err := s.h.GetAttachmentURL.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusTemporaryRedirect, link)
}

func (s *Server) respondWithOrder(c echo.Context, code int, actor *user.User, id kernel.ID) error {
	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(code, orderResponse(view))
}

// openUploads opens every file part. The returned func closes them.
func openUploads(form *multipart.Form) ([]ports.FileUpload, func(), error) {
	headers := form.File["files"]
	descriptions := form.Value["descriptions"]

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	uploads := make([]ports.FileUpload, 0, len(headers))
	for i, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		opened = append(opened, f)

		var description string
		if i < len(descriptions) {
			description = descriptions[i]
		}

		uploads = append(uploads, ports.FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Content:     f,
			Description: description,
		})
	}
	return uploads, closeAll, nil
}
