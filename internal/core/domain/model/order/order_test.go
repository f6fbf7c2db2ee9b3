package order_test

import (
	"strings"
	"testing"
	"time"

	"proteseflow/internal/core/domain/model/kernel"
	"proteseflow/internal/core/domain/model/order"
	"proteseflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T) order.Details {
	t.Helper()
	teeth, err := order.ParseToothElements("11, 12, 21")
	require.NoError(t, err)

	details, err := order.NewDetails(order.Details{
		PatientName:   "Maria Silva",
		PatientSex:    order.Female,
		ServiceType:   "Coroa",
		ToothElements: teeth,
		Color:         "A2",
	})
	require.NoError(t, err)
	return details
}

func TestNewOrder(t *testing.T) {
	dentistID := kernel.ID(4)

	t.Run("should create pending order owned by the dentist", func(t *testing.T) {
		o, err := order.NewOrder(dentistID, validDetails(t), nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsZero())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, dentistID, o.DentistID())
		assert.True(t, o.IsOwnedBy(dentistID))
		assert.False(t, o.IsOwnedBy(5))
		assert.Equal(t, "Maria Silva", o.Details().PatientName)
		assert.Equal(t, "Coroa", o.Details().ServiceType)
		assert.WithinDuration(t, time.Now(), o.CreatedAt(), time.Minute)
		assert.Empty(t, o.Attachments())
	})

	t.Run("should keep attachments", func(t *testing.T) {
		a, err := order.NewAttachment(order.File{Ref: "arquivos_protese/2025/01/x-coroa.stl", Name: "coroa.stl", Size: 10}, "")
		require.NoError(t, err)

		o, err := order.NewOrder(dentistID, validDetails(t), []*order.Attachment{a})

		require.NoError(t, err)
		require.Len(t, o.Attachments(), 1)
		assert.Equal(t, order.DefaultAttachmentDescription, o.Attachments()[0].Description())
	})

	t.Run("should fail without dentist", func(t *testing.T) {
		o, err := order.NewOrder(0, validDetails(t), nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, errs.FieldErrors(err), "dentist")
	})

	t.Run("should fail with zero details", func(t *testing.T) {
		o, err := order.NewOrder(dentistID, order.Details{}, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		fields := errs.FieldErrors(err)
		assert.Contains(t, fields, "patient_name")
		assert.Contains(t, fields, "patient_sex")
		assert.Contains(t, fields, "service_type")
		assert.Contains(t, fields, "tooth_elements")
	})
}

func TestNewDetails(t *testing.T) {
	teeth, err := order.ParseToothElements("36")
	require.NoError(t, err)

	t.Run("should trim text and truncate due date", func(t *testing.T) {
		due := time.Date(2025, 3, 14, 17, 45, 0, 0, time.UTC)

		d, err := order.NewDetails(order.Details{
			PatientName:   "  João Souza ",
			PatientSex:    order.Male,
			ServiceType:   " Faceta ",
			ToothElements: teeth,
			DueDate:       &due,
			Notes:         "  urgente  ",
		})

		require.NoError(t, err)
		assert.Equal(t, "João Souza", d.PatientName)
		assert.Equal(t, "Faceta", d.ServiceType)
		assert.Equal(t, "urgente", d.Notes)
		require.NotNil(t, d.DueDate)
		assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), *d.DueDate)
	})

	t.Run("should enforce maximum lengths", func(t *testing.T) {
		_, err := order.NewDetails(order.Details{
			PatientName:   strings.Repeat("a", 101),
			PatientSex:    order.Male,
			ServiceType:   strings.Repeat("b", 101),
			ToothElements: teeth,
			Color:         strings.Repeat("c", 51),
		})

		require.Error(t, err)
		fields := errs.FieldErrors(err)
		assert.Contains(t, fields, "patient_name")
		assert.Contains(t, fields, "service_type")
		assert.Contains(t, fields, "color")
		assert.NotContains(t, fields, "tooth_elements")
	})
}

func TestParseToothElements(t *testing.T) {
	t.Run("should normalise spacing", func(t *testing.T) {
		te, err := order.ParseToothElements("11,12 ,  21,,")

		require.NoError(t, err)
		assert.Equal(t, []string{"11", "12", "21"}, te.Items())
		assert.Equal(t, "11, 12, 21", te.String())
	})

	t.Run("should require at least one element", func(t *testing.T) {
		_, err := order.ParseToothElements(" , ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fit the stored column", func(t *testing.T) {
		_, err := order.ParseToothElements(strings.Repeat("11, ", 30))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestParseSex(t *testing.T) {
	s, err := order.ParseSex("f")
	require.NoError(t, err)
	assert.Equal(t, order.Female, s)
	assert.Equal(t, "F", s.String())

	_, err = order.ParseSex("X")
	require.Error(t, err)
	require.Error(t, order.UnknownSex.Validate())
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the whole workflow", func(t *testing.T) {
		o, err := order.NewOrder(1, validDetails(t), nil)
		require.NoError(t, err)

		for _, next := range []order.Status{order.InProduction, order.Completed, order.Approved} {
			changed, err := o.ChangeStatus(next)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("should treat same status as no-op", func(t *testing.T) {
		o, err := order.NewOrder(1, validDetails(t), nil)
		require.NoError(t, err)

		changed, err := o.ChangeStatus(order.Pending)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should skip straight to approved", func(t *testing.T) {
		o, err := order.NewOrder(1, validDetails(t), nil)
		require.NoError(t, err)

		changed, err := o.ChangeStatus(order.Approved)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("should leave status untouched on invalid transition", func(t *testing.T) {
		o, err := order.NewOrder(1, validDetails(t), nil)
		require.NoError(t, err)
		_, err = o.ChangeStatus(order.Approved)
		require.NoError(t, err)

		changed, err := o.ChangeStatus(order.Pending)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, changed)
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("should not leave cancelled", func(t *testing.T) {
		o, err := order.NewOrder(1, validDetails(t), nil)
		require.NoError(t, err)
		_, err = o.ChangeStatus(order.Cancelled)
		require.NoError(t, err)

		_, err = o.ChangeStatus(order.InProduction)

		require.Error(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_EditDetails(t *testing.T) {
	o, err := order.NewOrder(1, validDetails(t), nil)
	require.NoError(t, err)
	_, err = o.ChangeStatus(order.Cancelled)
	require.NoError(t, err)

	edited := validDetails(t)
	edited.PatientName = "Maria S. Costa"
	require.NoError(t, o.EditDetails(edited), "terminal orders stay editable")
	assert.Equal(t, "Maria S. Costa", o.Details().PatientName)

	err = o.EditDetails(order.Details{})
	require.Error(t, err)
	assert.Equal(t, "Maria S. Costa", o.Details().PatientName)
}

func TestRestoreOrder(t *testing.T) {
	a, err := order.RestoreAttachment(31, order.File{Ref: "k", Name: "ponte.stl"}, "Escaneamento", time.Now())
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.Snapshot{
		ID:          10,
		DentistID:   4,
		Details:     validDetails(t),
		Status:      order.Completed,
		Attachments: []*order.Attachment{a},
		CreatedAt:   time.Now(),
		Version:     2,
	})

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(10), o.ID())
	assert.Equal(t, order.Completed, o.Status())
	assert.Equal(t, 2, o.Version())

	found, ok := o.Attachment(31)
	require.True(t, ok)
	assert.Equal(t, "Escaneamento", found.Description())
	_, ok = o.Attachment(32)
	assert.False(t, ok)

	_, err = order.RestoreOrder(order.Snapshot{ID: 10, DentistID: 4, Details: validDetails(t)})
	require.Error(t, err, "status is required")
}

func TestOrder_Identify(t *testing.T) {
	o, err := order.NewOrder(1, validDetails(t), nil)
	require.NoError(t, err)

	require.NoError(t, o.Identify(3))
	require.ErrorIs(t, o.Identify(4), order.ErrOrderAlreadyIdentified)
	assert.Equal(t, kernel.ID(3), o.ID())
}

func TestOrder_ValidateAndEquality(t *testing.T) {
	var zero order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())

	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())

	a, _ := order.RestoreOrder(order.Snapshot{ID: 1, DentistID: 1, Details: validDetails(t), Status: order.Pending})
	b, _ := order.RestoreOrder(order.Snapshot{ID: 1, DentistID: 2, Details: validDetails(t), Status: order.Approved})
	c, _ := order.NewOrder(1, validDetails(t), nil)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func TestNewAttachment(t *testing.T) {
	t.Run("should require a stored file", func(t *testing.T) {
		_, err := order.NewAttachment(order.File{Name: "x.stl"}, "")
		assert.Contains(t, errs.FieldErrors(err), "file")
	})

	t.Run("should limit description", func(t *testing.T) {
		_, err := order.NewAttachment(order.File{Ref: "k"}, strings.Repeat("d", 101))
		assert.Contains(t, errs.FieldErrors(err), "description")
	})
}
