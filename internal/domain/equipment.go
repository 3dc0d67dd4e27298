package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Equipment is a chainsaw registration record.
//
// DataPrivacyConsent marks a record submitted through the public citizen
// form; such records start with EmailVerified=false and stay unprocessable
// until the owner confirms the email with an OTP. Staff-entered records are
// considered verified from the start.
type Equipment struct {
	ID uuid.UUID `db:"id"`

	// Owner information
	OwnerFirstName           string        `db:"owner_first_name"`
	OwnerMiddleName          string        `db:"owner_middle_name"`
	OwnerLastName            string        `db:"owner_last_name"`
	OwnerAddress             string        `db:"owner_address"`
	OwnerContactNumber       string        `db:"owner_contact_number"`
	OwnerEmail               string        `db:"owner_email"`
	OwnerPreferContactMethod ContactMethod `db:"owner_prefer_contact_method"`
	OwnerIDURL               string        `db:"owner_id_url"`

	// Chainsaw information
	Brand             string    `db:"brand"`
	Model             string    `db:"model"`
	SerialNumber      string    `db:"serial_number"`
	GuideBarLength    *float64  `db:"guide_bar_length"`
	HorsePower        *float64  `db:"horse_power"`
	FuelType          FuelType  `db:"fuel_type"`
	DateAcquired      time.Time `db:"date_acquired"`
	StencilOfSerialNo string    `db:"stencil_of_serial_no"`
	OtherInfo         string    `db:"other_info"`
	IntendedUse       UseType   `db:"intended_use"`
	IsNew             bool      `db:"is_new"`

	// Document requirements
	RegistrationApplicationURL    string `db:"registration_application_url"`
	OfficialReceiptURL            string `db:"official_receipt_url"`
	SPAURL                        string `db:"spa_url"`
	StencilSerialNumberPictureURL string `db:"stencil_serial_number_picture_url"`
	ChainsawPictureURL            string `db:"chainsaw_picture_url"`

	// Renewal registration requirements
	PreviousCertificateNumber     string `db:"previous_certificate_number"`
	RenewalApplicationURL         string `db:"renewal_application_url"`
	RenewalPreviousCertificateURL string `db:"renewal_previous_certificate_url"`

	// Additional requirements
	ForestTenureAgreementURL     string `db:"forest_tenure_agreement_url"`
	BusinessPermitURL            string `db:"business_permit_url"`
	CertificateOfRegistrationURL string `db:"certificate_of_registration_url"`
	LGUBusinessPermitURL         string `db:"lgu_business_permit_url"`
	WoodProcessingPermitURL      string `db:"wood_processing_permit_url"`
	GovernmentCertificationURL   string `db:"government_certification_url"`

	DataPrivacyConsent bool `db:"data_privacy_consent"`
	EmailVerified      bool `db:"email_verified"`

	// Application status and processing
	ApplicationStatus  *ApplicationStatus `db:"initial_application_status"`
	ApplicationRemarks string             `db:"initial_application_remarks"`
	InspectionResult   *InspectionResult  `db:"inspection_result"`
	InspectionRemarks  string             `db:"inspection_remarks"`
	ORNumber           string             `db:"or_number"`
	ORDate             *time.Time         `db:"or_date"`

	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OwnerName is the display name used in outbound notifications.
func (e *Equipment) OwnerName() string {
	return strings.TrimSpace(e.OwnerFirstName + " " + e.OwnerLastName)
}

// PublicSubmission reports whether the record came through the citizen form
// and is therefore subject to the email verification gate.
func (e *Equipment) PublicSubmission() bool {
	return e.DataPrivacyConsent
}

// EquipmentSummary carries the record fields quoted in notification emails.
type EquipmentSummary struct {
	ID           uuid.UUID `json:"id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	SerialNumber string    `json:"serial_number"`
}

func (e *Equipment) Summary() EquipmentSummary {
	return EquipmentSummary{
		ID:           e.ID,
		Brand:        e.Brand,
		Model:        e.Model,
		SerialNumber: e.SerialNumber,
	}
}
