package service

import (
	"context"
	"testing"

	"github.com/chainsaw-registry/backend/internal/importer"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRunBatch(t *testing.T) {
	outcome := runBatch([]int{1, 2, 3, 4},
		func(i int, _ int) string { return "Item " + string(rune('1'+i)) },
		func(item int) error {
			if item%2 == 0 {
				return errors.New("even")
			}
			return nil
		})

	assert.Equal(t, 2, outcome.Succeeded)
	assert.Equal(t, 2, outcome.Failed)
	// Errors keep input order
	assert.Equal(t, []string{"Item 2: even", "Item 4: even"}, outcome.Errors)
	assert.True(t, outcome.Success())
}

func TestBatchOutcome_Success(t *testing.T) {
	assert.True(t, (&BatchOutcome{Succeeded: 1, Failed: 9}).Success())
	assert.False(t, (&BatchOutcome{Failed: 3}).Success())
	assert.False(t, (&BatchOutcome{}).Success())
}

func validImportRow() importer.Row {
	return importer.Row{
		"Owner First Name":         "Juan",
		"Owner Middle Name":        "Santos",
		"Owner Last Name":          "Dela Cruz",
		"Owner Address":            "123 Mabini St, Quezon City",
		"Owner Contact Number":     "09171234567",
		"Owner Email":              "juan@example.com",
		"Preferred Contact Method": "Email",
		"Brand":                    "Stihl",
		"Model":                    "MS 382",
		"Serial Number":            "SN-0001",
		"Fuel Type":                "Gas",
		"Date Acquired":            "2024-01-10",
		"Stencil of Serial No":     "STN-0001",
		"Other Info":               "For farm use",
		"Intended Use":             "Wood Processing",
		"New Registration":         "Yes",
	}
}

func TestBulkImport(t *testing.T) {
	f := newEquipmentFixture()

	f.equipments.On("Create", mock.Anything, mock.Anything).Return(nil)

	badRow := validImportRow()
	badRow["Owner Email"] = "not-an-email"

	outcome := f.service.BulkImport(context.Background(), []importer.Row{
		validImportRow(),
		badRow,
		validImportRow(),
	})

	assert.Equal(t, 2, outcome.Succeeded)
	assert.Equal(t, 1, outcome.Failed)
	assert.Len(t, outcome.Errors, 1)
	assert.Contains(t, outcome.Errors[0], "Row 2")
	assert.True(t, outcome.Success())
}

func TestBulkImport_InvalidRowNeverReachesStore(t *testing.T) {
	f := newEquipmentFixture()

	badRow := validImportRow()
	delete(badRow, "Brand")

	outcome := f.service.BulkImport(context.Background(), []importer.Row{badRow})

	assert.Equal(t, 0, outcome.Succeeded)
	assert.Equal(t, 1, outcome.Failed)
	assert.False(t, outcome.Success())
	f.equipments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBulkDelete(t *testing.T) {
	f := newEquipmentFixture()

	missing := uuid.New()
	present := []uuid.UUID{uuid.New(), uuid.New()}

	f.equipments.On("Delete", mock.Anything, present[0]).Return(nil)
	f.equipments.On("Delete", mock.Anything, present[1]).Return(nil)
	f.equipments.On("Delete", mock.Anything, missing).Return(assert.AnError)

	outcome := f.service.BulkDelete(context.Background(), []uuid.UUID{present[0], missing, present[1]})

	assert.Equal(t, 2, outcome.Succeeded)
	assert.Equal(t, 1, outcome.Failed)
	assert.Len(t, outcome.Errors, 1)
	assert.Contains(t, outcome.Errors[0], "Equipment ID "+missing.String())
}
