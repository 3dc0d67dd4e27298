package domain

// FuelType is the chainsaw engine fuel category.
type FuelType string

const (
	FuelTypeGas      FuelType = "GAS"
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeElectric FuelType = "ELECTRIC"
	FuelTypeOther    FuelType = "OTHER"
)

func (f FuelType) Valid() bool {
	switch f {
	case FuelTypeGas, FuelTypeDiesel, FuelTypeElectric, FuelTypeOther:
		return true
	}
	return false
}

// UseType is the declared intended use of the registered chainsaw.
type UseType string

const (
	UseTypeWoodProcessing     UseType = "WOOD_PROCESSING"
	UseTypeTreeCuttingPrivate UseType = "TREE_CUTTING_PRIVATE_PLANTATION"
	UseTypeGovtLegalPurposes  UseType = "GOVT_LEGAL_PURPOSES"
	UseTypeOfficialTreeCut    UseType = "OFFICIAL_TREE_CUTTING_BARANGAY"
	UseTypeOther              UseType = "OTHER"
)

func (u UseType) Valid() bool {
	switch u {
	case UseTypeWoodProcessing, UseTypeTreeCuttingPrivate, UseTypeGovtLegalPurposes, UseTypeOfficialTreeCut, UseTypeOther:
		return true
	}
	return false
}

// ApplicationStatus is a staff review outcome for the initial application.
// A nil value on Equipment means the application has not been reviewed at all.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// InspectionResult is the staff field-inspection outcome.
type InspectionResult string

const (
	InspectionResultPending InspectionResult = "PENDING"
	InspectionResultPassed  InspectionResult = "PASSED"
	InspectionResultFailed  InspectionResult = "FAILED"
)

func (r InspectionResult) Valid() bool {
	switch r {
	case InspectionResultPending, InspectionResultPassed, InspectionResultFailed:
		return true
	}
	return false
}

// ContactMethod is the owner's preferred contact channel.
type ContactMethod string

const (
	ContactMethodEmail ContactMethod = "EMAIL"
	ContactMethodPhone ContactMethod = "PHONE"
)

func (m ContactMethod) Valid() bool {
	return m == ContactMethodEmail || m == ContactMethodPhone
}
