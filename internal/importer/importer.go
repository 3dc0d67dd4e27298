package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/chainsaw-registry/backend/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Row is one imported spreadsheet row, keyed by column header. The upload
// widget parses the sheet client-side; this package only maps named columns
// onto record fields and never sees cell positions.
type Row map[string]string

// EquipmentRow is the validated shape of an import row. Constraints mirror
// the registration form.
type EquipmentRow struct {
	OwnerFirstName     string `validate:"required,min=2,max=50"`
	OwnerMiddleName    string `validate:"required,max=10"`
	OwnerLastName      string `validate:"required,min=2,max=50"`
	OwnerAddress       string `validate:"required,min=10,max=200"`
	OwnerContactNumber string `validate:"required,max=20"`
	OwnerEmail         string `validate:"required,email"`
	ContactMethod      string `validate:"required,oneof=EMAIL PHONE"`

	Brand             string    `validate:"required,min=2,max=100"`
	Model             string    `validate:"required,min=2,max=100"`
	SerialNumber      string    `validate:"required,max=100"`
	GuideBarLength    *float64  `validate:"omitempty,gt=0"`
	HorsePower        *float64  `validate:"omitempty,gt=0"`
	FuelType          string    `validate:"required,oneof=GAS DIESEL ELECTRIC OTHER"`
	DateAcquired      time.Time `validate:"required"`
	StencilOfSerialNo string    `validate:"required,max=100"`
	OtherInfo         string    `validate:"required,max=500"`
	IntendedUse       string    `validate:"required,oneof=WOOD_PROCESSING TREE_CUTTING_PRIVATE_PLANTATION GOVT_LEGAL_PURPOSES OFFICIAL_TREE_CUTTING_BARANGAY OTHER"`
	IsNew             bool

	PreviousCertificateNumber string `validate:"max=100"`

	ApplicationStatus string `validate:"omitempty,oneof=PENDING ACCEPTED REJECTED"`
	InspectionResult  string `validate:"omitempty,oneof=PENDING PASSED FAILED"`
}

type binding struct {
	column string
	set    func(r *EquipmentRow, value string) error
}

func setString(dst func(r *EquipmentRow) *string) func(*EquipmentRow, string) error {
	return func(r *EquipmentRow, value string) error {
		*dst(r) = strings.TrimSpace(value)
		return nil
	}
}

func setFloat(dst func(r *EquipmentRow) **float64) func(*EquipmentRow, string) error {
	return func(r *EquipmentRow, value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid number %q", value)
		}
		*dst(r) = &f
		return nil
	}
}

// Accepted date layouts, in the order the office's sheets use them.
var dateLayouts = []string{"2006-01-02", "01/02/2006", "Jan 2, 2006"}

func setDate(dst func(r *EquipmentRow) *time.Time) func(*EquipmentRow, string) error {
	return func(r *EquipmentRow, value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				*dst(r) = t
				return nil
			}
		}
		return errors.Errorf("invalid date %q", value)
	}
}

func setBool(dst func(r *EquipmentRow) *bool) func(*EquipmentRow, string) error {
	return func(r *EquipmentRow, value string) error {
		value = strings.ToLower(strings.TrimSpace(value))
		switch value {
		case "", "no", "false", "0":
			*dst(r) = false
		case "yes", "true", "1":
			*dst(r) = true
		default:
			return errors.Errorf("invalid boolean %q", value)
		}
		return nil
	}
}

func setEnum(dst func(r *EquipmentRow) *string) func(*EquipmentRow, string) error {
	return func(r *EquipmentRow, value string) error {
		*dst(r) = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), " ", "_"))
		return nil
	}
}

// bindings is the declarative column-to-field table consumed before
// validation. Adding an importable column means adding one entry here.
var bindings = []binding{
	{"Owner First Name", setString(func(r *EquipmentRow) *string { return &r.OwnerFirstName })},
	{"Owner Middle Name", setString(func(r *EquipmentRow) *string { return &r.OwnerMiddleName })},
	{"Owner Last Name", setString(func(r *EquipmentRow) *string { return &r.OwnerLastName })},
	{"Owner Address", setString(func(r *EquipmentRow) *string { return &r.OwnerAddress })},
	{"Owner Contact Number", setString(func(r *EquipmentRow) *string { return &r.OwnerContactNumber })},
	{"Owner Email", setString(func(r *EquipmentRow) *string { return &r.OwnerEmail })},
	{"Preferred Contact Method", setEnum(func(r *EquipmentRow) *string { return &r.ContactMethod })},
	{"Brand", setString(func(r *EquipmentRow) *string { return &r.Brand })},
	{"Model", setString(func(r *EquipmentRow) *string { return &r.Model })},
	{"Serial Number", setString(func(r *EquipmentRow) *string { return &r.SerialNumber })},
	{"Guide Bar Length", setFloat(func(r *EquipmentRow) **float64 { return &r.GuideBarLength })},
	{"Horse Power", setFloat(func(r *EquipmentRow) **float64 { return &r.HorsePower })},
	{"Fuel Type", setEnum(func(r *EquipmentRow) *string { return &r.FuelType })},
	{"Date Acquired", setDate(func(r *EquipmentRow) *time.Time { return &r.DateAcquired })},
	{"Stencil of Serial No", setString(func(r *EquipmentRow) *string { return &r.StencilOfSerialNo })},
	{"Other Info", setString(func(r *EquipmentRow) *string { return &r.OtherInfo })},
	{"Intended Use", setEnum(func(r *EquipmentRow) *string { return &r.IntendedUse })},
	{"New Registration", setBool(func(r *EquipmentRow) *bool { return &r.IsNew })},
	{"Previous Certificate Number", setString(func(r *EquipmentRow) *string { return &r.PreviousCertificateNumber })},
	{"Application Status", setEnum(func(r *EquipmentRow) *string { return &r.ApplicationStatus })},
	{"Inspection Result", setEnum(func(r *EquipmentRow) *string { return &r.InspectionResult })},
}

var validate = validator.New()

// Parse maps a raw row onto an EquipmentRow and validates it. It returns the
// first mapping or validation problem as a row-level error.
func Parse(row Row) (*EquipmentRow, error) {
	var parsed EquipmentRow

	for _, b := range bindings {
		value, ok := row[b.column]
		if !ok {
			continue
		}
		if err := b.set(&parsed, value); err != nil {
			return nil, errors.Wrapf(err, "column %q", b.column)
		}
	}

	if err := validate.Struct(&parsed); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return nil, errors.Errorf("invalid field %s (%s)", first.Field(), first.Tag())
		}
		return nil, err
	}

	return &parsed, nil
}

// Equipment converts a validated row into a record ready for creation.
// Imported records are staff-entered, so no privacy consent flag is carried
// and no verification gate applies.
func (r *EquipmentRow) Equipment() *domain.Equipment {
	eq := &domain.Equipment{
		OwnerFirstName:            r.OwnerFirstName,
		OwnerMiddleName:           r.OwnerMiddleName,
		OwnerLastName:             r.OwnerLastName,
		OwnerAddress:              r.OwnerAddress,
		OwnerContactNumber:        r.OwnerContactNumber,
		OwnerEmail:                r.OwnerEmail,
		OwnerPreferContactMethod:  domain.ContactMethod(r.ContactMethod),
		Brand:                     r.Brand,
		Model:                     r.Model,
		SerialNumber:              r.SerialNumber,
		GuideBarLength:            r.GuideBarLength,
		HorsePower:                r.HorsePower,
		FuelType:                  domain.FuelType(r.FuelType),
		DateAcquired:              r.DateAcquired,
		StencilOfSerialNo:         r.StencilOfSerialNo,
		OtherInfo:                 r.OtherInfo,
		IntendedUse:               domain.UseType(r.IntendedUse),
		IsNew:                     r.IsNew,
		PreviousCertificateNumber: r.PreviousCertificateNumber,
	}

	if r.ApplicationStatus != "" {
		status := domain.ApplicationStatus(r.ApplicationStatus)
		eq.ApplicationStatus = &status
	}
	if r.InspectionResult != "" {
		result := domain.InspectionResult(r.InspectionResult)
		eq.InspectionResult = &result
	}

	return eq
}
