package importer

import (
	"testing"
	"time"

	"github.com/chainsaw-registry/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow() Row {
	return Row{
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
		"Guide Bar Length":         "25",
		"Horse Power":              "3.9",
		"Fuel Type":                "Gas",
		"Date Acquired":            "2024-01-10",
		"Stencil of Serial No":     "STN-0001",
		"Other Info":               "For farm use",
		"Intended Use":             "Wood Processing",
		"New Registration":         "Yes",
	}
}

func TestParse(t *testing.T) {
	parsed, err := Parse(validRow())

	require.NoError(t, err)
	assert.Equal(t, "Juan", parsed.OwnerFirstName)
	assert.Equal(t, "EMAIL", parsed.ContactMethod)
	assert.Equal(t, "GAS", parsed.FuelType)
	assert.Equal(t, "WOOD_PROCESSING", parsed.IntendedUse)
	assert.True(t, parsed.IsNew)
	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), parsed.DateAcquired)
	require.NotNil(t, parsed.GuideBarLength)
	assert.Equal(t, 25.0, *parsed.GuideBarLength)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	row := validRow()
	row["Owner First Name"] = "  Juan  "

	parsed, err := Parse(row)

	require.NoError(t, err)
	assert.Equal(t, "Juan", parsed.OwnerFirstName)
}

func TestParse_DateLayouts(t *testing.T) {
	want := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	for _, value := range []string{"2024-01-10", "01/10/2024", "Jan 10, 2024"} {
		row := validRow()
		row["Date Acquired"] = value

		parsed, err := Parse(row)

		require.NoError(t, err, value)
		assert.Equal(t, want, parsed.DateAcquired, value)
	}
}

func TestParse_InvalidDate(t *testing.T) {
	row := validRow()
	row["Date Acquired"] = "sometime last year"

	_, err := Parse(row)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "Date Acquired"`)
}

func TestParse_InvalidNumber(t *testing.T) {
	row := validRow()
	row["Horse Power"] = "three"

	_, err := Parse(row)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "Horse Power"`)
}

func TestParse_ValidationFailure(t *testing.T) {
	row := validRow()
	row["Owner Email"] = "not-an-email"

	_, err := Parse(row)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid field OwnerEmail (email)")
}

func TestParse_MissingRequiredColumn(t *testing.T) {
	row := validRow()
	delete(row, "Brand")

	_, err := Parse(row)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid field Brand (required)")
}

func TestParse_EnumNormalization(t *testing.T) {
	row := validRow()
	row["Intended Use"] = "tree cutting private plantation"

	parsed, err := Parse(row)

	require.NoError(t, err)
	assert.Equal(t, "TREE_CUTTING_PRIVATE_PLANTATION", parsed.IntendedUse)
}

func TestEquipment(t *testing.T) {
	parsed, err := Parse(validRow())
	require.NoError(t, err)

	eq := parsed.Equipment()

	assert.Equal(t, domain.FuelTypeGas, eq.FuelType)
	assert.Equal(t, domain.UseTypeWoodProcessing, eq.IntendedUse)
	assert.Equal(t, domain.ContactMethodEmail, eq.OwnerPreferContactMethod)
	assert.False(t, eq.DataPrivacyConsent)
	assert.Nil(t, eq.ApplicationStatus)
	assert.Nil(t, eq.InspectionResult)
}

func TestEquipment_ReviewFields(t *testing.T) {
	row := validRow()
	row["Application Status"] = "Accepted"
	row["Inspection Result"] = "Passed"

	parsed, err := Parse(row)
	require.NoError(t, err)

	eq := parsed.Equipment()

	require.NotNil(t, eq.ApplicationStatus)
	assert.Equal(t, domain.ApplicationStatusAccepted, *eq.ApplicationStatus)
	require.NotNil(t, eq.InspectionResult)
	assert.Equal(t, domain.InspectionResultPassed, *eq.InspectionResult)
}
