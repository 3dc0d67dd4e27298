package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	StaffNotFoundCode    = 1001
	StaffNotFoundMessage = "staff not found"

	EquipmentNotFoundCode    = 2001
	EquipmentNotFoundMessage = "equipment not found"

	// The gate's soft refusal. Deliberately its own code so the portal can
	// open the verification prompt instead of a generic failure toast.
	EmailVerificationRequiredCode    = 2002
	EmailVerificationRequiredMessage = "email verification required before processing this equipment registration"

	DuplicateSerialNumberCode    = 2003
	DuplicateSerialNumberMessage = "equipment with this serial number already registered"

	InvalidOTPCode    = 3001
	InvalidOTPMessage = "invalid OTP"

	OTPEmailMismatchCode    = 3002
	OTPEmailMismatchMessage = "OTP does not match the email address"

	OTPExpiredCode    = 3003
	OTPExpiredMessage = "OTP has expired, please request a new one"

	NoPendingRecordCode    = 3004
	NoPendingRecordMessage = "no equipment registration found for this email or email already verified"

	NoPendingRegistrationCode    = 3005
	NoPendingRegistrationMessage = "no pending equipment registration found for this email"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case StaffNotFoundCode:
		errorStruct.ErrorCode = StaffNotFoundCode
		errorStruct.ErrorMessage = StaffNotFoundMessage
	case EquipmentNotFoundCode:
		errorStruct.ErrorCode = EquipmentNotFoundCode
		errorStruct.ErrorMessage = EquipmentNotFoundMessage
	case EmailVerificationRequiredCode:
		errorStruct.ErrorCode = EmailVerificationRequiredCode
		errorStruct.ErrorMessage = EmailVerificationRequiredMessage
	case DuplicateSerialNumberCode:
		errorStruct.ErrorCode = DuplicateSerialNumberCode
		errorStruct.ErrorMessage = DuplicateSerialNumberMessage
	case InvalidOTPCode:
		errorStruct.ErrorCode = InvalidOTPCode
		errorStruct.ErrorMessage = InvalidOTPMessage
	case OTPEmailMismatchCode:
		errorStruct.ErrorCode = OTPEmailMismatchCode
		errorStruct.ErrorMessage = OTPEmailMismatchMessage
	case OTPExpiredCode:
		errorStruct.ErrorCode = OTPExpiredCode
		errorStruct.ErrorMessage = OTPExpiredMessage
	case NoPendingRecordCode:
		errorStruct.ErrorCode = NoPendingRecordCode
		errorStruct.ErrorMessage = NoPendingRecordMessage
	case NoPendingRegistrationCode:
		errorStruct.ErrorCode = NoPendingRegistrationCode
		errorStruct.ErrorMessage = NoPendingRegistrationMessage
	}

	return errorStruct
}
