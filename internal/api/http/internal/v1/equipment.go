package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chainsaw-registry/backend/internal/domain"
	"github.com/chainsaw-registry/backend/internal/importer"
	"github.com/chainsaw-registry/backend/internal/repository"
	"github.com/chainsaw-registry/backend/internal/service"
	"github.com/chainsaw-registry/backend/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initEquipmentRoutes(api *gin.RouterGroup) {
	equipments := api.Group("/equipments")
	{
		// Public citizen endpoints
		equipments.POST("", h.createEquipment)
		equipments.POST("/verify-otp", h.verifyOTP)
		equipments.POST("/resend-otp", h.resendOTP)
		equipments.GET("/verify-email", h.verifyEmail)

		authenticated := equipments.Group("", h.staffIdentityMiddleware)
		{
			authenticated.GET("", h.getEquipmentsList)
			authenticated.GET("/:id", h.getEquipmentByID)
			authenticated.GET("/:id/can-process", h.canProcessEquipment)
			authenticated.PUT("/:id", h.updateEquipment)
			authenticated.DELETE("/:id", h.deleteEquipment)
			authenticated.POST("/bulk-import", h.bulkImportEquipments)
			authenticated.POST("/bulk-delete", h.bulkDeleteEquipments)
		}
	}
}

const dateLayout = "2006-01-02"

type createEquipmentRequest struct {
	OwnerFirstName           string `json:"owner_first_name" binding:"required,min=2,max=50"`
	OwnerMiddleName          string `json:"owner_middle_name" binding:"required,max=10"`
	OwnerLastName            string `json:"owner_last_name" binding:"required,min=2,max=50"`
	OwnerAddress             string `json:"owner_address" binding:"required,min=10,max=200"`
	OwnerContactNumber       string `json:"owner_contact_number" binding:"required,contactnumber"`
	OwnerEmail               string `json:"owner_email" binding:"required,email"`
	OwnerPreferContactMethod string `json:"owner_prefer_contact_method" binding:"required,oneof=EMAIL PHONE"`
	OwnerIDURL               string `json:"owner_id_url" binding:"required,url"`

	Brand             string   `json:"brand" binding:"required,min=2,max=100"`
	Model             string   `json:"model" binding:"required,min=2,max=100"`
	SerialNumber      string   `json:"serial_number" binding:"required,max=100"`
	GuideBarLength    *float64 `json:"guide_bar_length" binding:"omitempty,gt=0"`
	HorsePower        *float64 `json:"horse_power" binding:"omitempty,gt=0"`
	FuelType          string   `json:"fuel_type" binding:"required,oneof=GAS DIESEL ELECTRIC OTHER"`
	DateAcquired      string   `json:"date_acquired" binding:"required,datetime=2006-01-02"`
	StencilOfSerialNo string   `json:"stencil_of_serial_no" binding:"required,max=100"`
	OtherInfo         string   `json:"other_info" binding:"required,max=500"`
	IntendedUse       string   `json:"intended_use" binding:"required,oneof=WOOD_PROCESSING TREE_CUTTING_PRIVATE_PLANTATION GOVT_LEGAL_PURPOSES OFFICIAL_TREE_CUTTING_BARANGAY OTHER"`
	IsNew             bool     `json:"is_new"`

	RegistrationApplicationURL    string `json:"registration_application_url" binding:"omitempty,url"`
	OfficialReceiptURL            string `json:"official_receipt_url" binding:"omitempty,url"`
	SPAURL                        string `json:"spa_url" binding:"omitempty,url"`
	StencilSerialNumberPictureURL string `json:"stencil_serial_number_picture_url" binding:"omitempty,url"`
	ChainsawPictureURL            string `json:"chainsaw_picture_url" binding:"omitempty,url"`

	PreviousCertificateNumber     string `json:"previous_certificate_number" binding:"max=100"`
	RenewalApplicationURL         string `json:"renewal_application_url" binding:"omitempty,url"`
	RenewalPreviousCertificateURL string `json:"renewal_previous_certificate_url" binding:"omitempty,url"`

	ForestTenureAgreementURL     string `json:"forest_tenure_agreement_url" binding:"omitempty,url"`
	BusinessPermitURL            string `json:"business_permit_url" binding:"omitempty,url"`
	CertificateOfRegistrationURL string `json:"certificate_of_registration_url" binding:"omitempty,url"`
	LGUBusinessPermitURL         string `json:"lgu_business_permit_url" binding:"omitempty,url"`
	WoodProcessingPermitURL      string `json:"wood_processing_permit_url" binding:"omitempty,url"`
	GovernmentCertificationURL   string `json:"government_certification_url" binding:"omitempty,url"`

	DataPrivacyConsent bool `json:"data_privacy_consent"`
}

func (r *createEquipmentRequest) toDomain() *domain.Equipment {
	dateAcquired, _ := time.Parse(dateLayout, r.DateAcquired)

	return &domain.Equipment{
		OwnerFirstName:           r.OwnerFirstName,
		OwnerMiddleName:          r.OwnerMiddleName,
		OwnerLastName:            r.OwnerLastName,
		OwnerAddress:             r.OwnerAddress,
		OwnerContactNumber:       r.OwnerContactNumber,
		OwnerEmail:               r.OwnerEmail,
		OwnerPreferContactMethod: domain.ContactMethod(r.OwnerPreferContactMethod),
		OwnerIDURL:               r.OwnerIDURL,

		Brand:             r.Brand,
		Model:             r.Model,
		SerialNumber:      r.SerialNumber,
		GuideBarLength:    r.GuideBarLength,
		HorsePower:        r.HorsePower,
		FuelType:          domain.FuelType(r.FuelType),
		DateAcquired:      dateAcquired,
		StencilOfSerialNo: r.StencilOfSerialNo,
		OtherInfo:         r.OtherInfo,
		IntendedUse:       domain.UseType(r.IntendedUse),
		IsNew:             r.IsNew,

		RegistrationApplicationURL:    r.RegistrationApplicationURL,
		OfficialReceiptURL:            r.OfficialReceiptURL,
		SPAURL:                        r.SPAURL,
		StencilSerialNumberPictureURL: r.StencilSerialNumberPictureURL,
		ChainsawPictureURL:            r.ChainsawPictureURL,

		PreviousCertificateNumber:     r.PreviousCertificateNumber,
		RenewalApplicationURL:         r.RenewalApplicationURL,
		RenewalPreviousCertificateURL: r.RenewalPreviousCertificateURL,

		ForestTenureAgreementURL:     r.ForestTenureAgreementURL,
		BusinessPermitURL:            r.BusinessPermitURL,
		CertificateOfRegistrationURL: r.CertificateOfRegistrationURL,
		LGUBusinessPermitURL:         r.LGUBusinessPermitURL,
		WoodProcessingPermitURL:      r.WoodProcessingPermitURL,
		GovernmentCertificationURL:   r.GovernmentCertificationURL,

		DataPrivacyConsent: r.DataPrivacyConsent,
	}
}

type equipmentResponse struct {
	ID string `json:"id"`

	OwnerFirstName           string `json:"owner_first_name"`
	OwnerMiddleName          string `json:"owner_middle_name"`
	OwnerLastName            string `json:"owner_last_name"`
	OwnerAddress             string `json:"owner_address"`
	OwnerContactNumber       string `json:"owner_contact_number"`
	OwnerEmail               string `json:"owner_email"`
	OwnerPreferContactMethod string `json:"owner_prefer_contact_method"`
	OwnerIDURL               string `json:"owner_id_url,omitempty"`

	Brand             string   `json:"brand"`
	Model             string   `json:"model"`
	SerialNumber      string   `json:"serial_number"`
	GuideBarLength    *float64 `json:"guide_bar_length,omitempty"`
	HorsePower        *float64 `json:"horse_power,omitempty"`
	FuelType          string   `json:"fuel_type"`
	DateAcquired      string   `json:"date_acquired"`
	StencilOfSerialNo string   `json:"stencil_of_serial_no"`
	OtherInfo         string   `json:"other_info"`
	IntendedUse       string   `json:"intended_use"`
	IsNew             bool     `json:"is_new"`

	RegistrationApplicationURL    string `json:"registration_application_url,omitempty"`
	OfficialReceiptURL            string `json:"official_receipt_url,omitempty"`
	SPAURL                        string `json:"spa_url,omitempty"`
	StencilSerialNumberPictureURL string `json:"stencil_serial_number_picture_url,omitempty"`
	ChainsawPictureURL            string `json:"chainsaw_picture_url,omitempty"`

	PreviousCertificateNumber     string `json:"previous_certificate_number,omitempty"`
	RenewalApplicationURL         string `json:"renewal_application_url,omitempty"`
	RenewalPreviousCertificateURL string `json:"renewal_previous_certificate_url,omitempty"`

	ForestTenureAgreementURL     string `json:"forest_tenure_agreement_url,omitempty"`
	BusinessPermitURL            string `json:"business_permit_url,omitempty"`
	CertificateOfRegistrationURL string `json:"certificate_of_registration_url,omitempty"`
	LGUBusinessPermitURL         string `json:"lgu_business_permit_url,omitempty"`
	WoodProcessingPermitURL      string `json:"wood_processing_permit_url,omitempty"`
	GovernmentCertificationURL   string `json:"government_certification_url,omitempty"`

	DataPrivacyConsent bool `json:"data_privacy_consent"`
	EmailVerified      bool `json:"email_verified"`

	ApplicationStatus  *string `json:"initial_application_status"`
	ApplicationRemarks string  `json:"initial_application_remarks,omitempty"`
	InspectionResult   *string `json:"inspection_result"`
	InspectionRemarks  string  `json:"inspection_remarks,omitempty"`
	ORNumber           string  `json:"or_number,omitempty"`
	ORDate             *string `json:"or_date,omitempty"`

	// Derived validity fields, recomputed on every read
	LifecycleStatus string `json:"lifecycle_status"`
	ValidUntil      string `json:"valid_until"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
	ExpiringSoon    bool   `json:"expiring_soon"`

	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

func toEquipmentResponse(e *domain.Equipment) equipmentResponse {
	now := time.Now()

	resp := equipmentResponse{
		ID: e.ID.String(),

		OwnerFirstName:           e.OwnerFirstName,
		OwnerMiddleName:          e.OwnerMiddleName,
		OwnerLastName:            e.OwnerLastName,
		OwnerAddress:             e.OwnerAddress,
		OwnerContactNumber:       e.OwnerContactNumber,
		OwnerEmail:               e.OwnerEmail,
		OwnerPreferContactMethod: string(e.OwnerPreferContactMethod),
		OwnerIDURL:               e.OwnerIDURL,

		Brand:             e.Brand,
		Model:             e.Model,
		SerialNumber:      e.SerialNumber,
		GuideBarLength:    e.GuideBarLength,
		HorsePower:        e.HorsePower,
		FuelType:          string(e.FuelType),
		DateAcquired:      e.DateAcquired.Format(dateLayout),
		StencilOfSerialNo: e.StencilOfSerialNo,
		OtherInfo:         e.OtherInfo,
		IntendedUse:       string(e.IntendedUse),
		IsNew:             e.IsNew,

		RegistrationApplicationURL:    e.RegistrationApplicationURL,
		OfficialReceiptURL:            e.OfficialReceiptURL,
		SPAURL:                        e.SPAURL,
		StencilSerialNumberPictureURL: e.StencilSerialNumberPictureURL,
		ChainsawPictureURL:            e.ChainsawPictureURL,

		PreviousCertificateNumber:     e.PreviousCertificateNumber,
		RenewalApplicationURL:         e.RenewalApplicationURL,
		RenewalPreviousCertificateURL: e.RenewalPreviousCertificateURL,

		ForestTenureAgreementURL:     e.ForestTenureAgreementURL,
		BusinessPermitURL:            e.BusinessPermitURL,
		CertificateOfRegistrationURL: e.CertificateOfRegistrationURL,
		LGUBusinessPermitURL:         e.LGUBusinessPermitURL,
		WoodProcessingPermitURL:      e.WoodProcessingPermitURL,
		GovernmentCertificationURL:   e.GovernmentCertificationURL,

		DataPrivacyConsent: e.DataPrivacyConsent,
		EmailVerified:      e.EmailVerified,

		ApplicationRemarks: e.ApplicationRemarks,
		InspectionRemarks:  e.InspectionRemarks,
		ORNumber:           e.ORNumber,

		LifecycleStatus: string(e.Lifecycle(now)),
		ValidUntil:      e.ValidUntil().Format(dateLayout),
		DaysUntilExpiry: e.DaysUntilExpiry(now),
		ExpiringSoon:    e.ExpiringSoon(now),

		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}

	if e.ApplicationStatus != nil {
		status := string(*e.ApplicationStatus)
		resp.ApplicationStatus = &status
	}
	if e.InspectionResult != nil {
		result := string(*e.InspectionResult)
		resp.InspectionResult = &result
	}
	if e.ORDate != nil {
		orDate := e.ORDate.Format(dateLayout)
		resp.ORDate = &orDate
	}
	if e.UpdatedAt != nil {
		updatedAt := e.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

type createEquipmentResponse struct {
	ID                        string `json:"id"`
	EmailVerificationRequired bool   `json:"email_verification_required"`
	CreatedAt                 string `json:"created_at"`
}

// @Summary Register Equipment
// @Tags Equipments
// @Description Submit a chainsaw registration. Public submissions (with data privacy consent) trigger an OTP email and stay unprocessable until the owner verifies the email address.
// @ModuleID createEquipment
// @Accept  json
// @Produce  json
// @Param input body createEquipmentRequest true "Registration data"
// @Success 201 {object} createEquipmentResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /equipments [post]
func (h *Handler) createEquipment(c *gin.Context) {
	var req createEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	equipment, err := h.services.Equipment.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSerialNumber) {
			errorResponse(c, DuplicateSerialNumberCode)
			return
		}

		logger.Error("failed to create equipment", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, createEquipmentResponse{
		ID:                        equipment.ID.String(),
		EmailVerificationRequired: equipment.PublicSubmission(),
		CreatedAt:                 equipment.CreatedAt.Format(time.RFC3339),
	})
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,number"`
}

// @Summary Verify OTP
// @Tags Equipments
// @Description Confirm the owner's email address with the one-time code sent after a public submission
// @ModuleID verifyOTP
// @Accept  json
// @Produce  json
// @Param input body verifyOTPRequest true "Email and OTP"
// @Success 200 {object} equipmentResponse
// @Failure 400 {object} ErrorStruct
// @Router /equipments/verify-otp [post]
func (h *Handler) verifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	equipment, err := h.services.Verification.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		errorResponse(c, verificationErrorCode(err))
		return
	}

	c.JSON(http.StatusOK, toEquipmentResponse(equipment))
}

// @Summary Verify Email By Link
// @Tags Equipments
// @Description Confirm the owner's email address via the verification link token
// @ModuleID verifyEmail
// @Accept  json
// @Produce  json
// @Param token query string true "Verification token"
// @Success 200 {object} equipmentResponse
// @Failure 400 {object} ErrorStruct
// @Router /equipments/verify-email [get]
func (h *Handler) verifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		errorResponse(c, InvalidOTPCode)
		return
	}

	equipment, err := h.services.Verification.VerifyEmailToken(c.Request.Context(), token)
	if err != nil {
		errorResponse(c, verificationErrorCode(err))
		return
	}

	c.JSON(http.StatusOK, toEquipmentResponse(equipment))
}

type resendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary Resend OTP
// @Tags Equipments
// @Description Issue a fresh OTP for a pending public submission. The previous code stops working.
// @ModuleID resendOTP
// @Accept  json
// @Produce  json
// @Param input body resendOTPRequest true "Email"
// @Success 200
// @Failure 400 {object} ErrorStruct
// @Router /equipments/resend-otp [post]
func (h *Handler) resendOTP(c *gin.Context) {
	var req resendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Verification.ResendOTP(c.Request.Context(), req.Email); err != nil {
		errorResponse(c, verificationErrorCode(err))
		return
	}

	c.Status(http.StatusOK)
}

func verificationErrorCode(err error) ErrorCode {
	switch {
	case errors.Is(err, service.ErrTokenNotFound):
		return InvalidOTPCode
	case errors.Is(err, service.ErrEmailMismatch):
		return OTPEmailMismatchCode
	case errors.Is(err, service.ErrTokenExpired):
		return OTPExpiredCode
	case errors.Is(err, service.ErrNoPendingRecord):
		return NoPendingRecordCode
	case errors.Is(err, service.ErrNoPendingRegistration):
		return NoPendingRegistrationCode
	}
	return UnknownErrorCode
}

type equipmentsListResponse struct {
	Equipments []equipmentResponse `json:"equipments"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}

// @Summary Get Equipments List
// @Tags Equipments
// @Description List registrations with pagination and filtering
// @ModuleID getEquipmentsList
// @Accept  json
// @Produce  json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Param brand query string false "Filter by brand"
// @Param model query string false "Filter by model"
// @Param serial_number query string false "Filter by serial number"
// @Param search query string false "Search across owner name, email, brand, model and serial number"
// @Param fuel_types query string false "Comma-separated fuel types (GAS, DIESEL, ELECTRIC, OTHER)"
// @Param use_types query string false "Comma-separated use types"
// @Success 200 {object} equipmentsListResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Security StaffAuth
// @Router /equipments [get]
func (h *Handler) getEquipmentsList(c *gin.Context) {
	page := 1
	limit := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	filters := &repository.EquipmentFilters{
		Brand:        c.Query("brand"),
		Model:        c.Query("model"),
		SerialNumber: c.Query("serial_number"),
		Search:       c.Query("search"),
	}

	if fuelTypesStr := c.Query("fuel_types"); fuelTypesStr != "" {
		for _, raw := range strings.Split(fuelTypesStr, ",") {
			fuelType := domain.FuelType(strings.TrimSpace(raw))
			if fuelType.Valid() {
				filters.FuelTypes = append(filters.FuelTypes, fuelType)
			}
		}
	}

	if useTypesStr := c.Query("use_types"); useTypesStr != "" {
		for _, raw := range strings.Split(useTypesStr, ",") {
			useType := domain.UseType(strings.TrimSpace(raw))
			if useType.Valid() {
				filters.UseTypes = append(filters.UseTypes, useType)
			}
		}
	}

	equipments, total, err := h.services.Equipment.GetAll(c.Request.Context(), page, limit, filters)
	if err != nil {
		logger.Error("failed to get equipments", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	response := equipmentsListResponse{
		Equipments: make([]equipmentResponse, len(equipments)),
		Total:      total,
		Page:       page,
		Limit:      limit,
	}
	for i, equipment := range equipments {
		response.Equipments[i] = toEquipmentResponse(equipment)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get Equipment By ID
// @Tags Equipments
// @Description Get a single registration with its derived validity fields
// @ModuleID getEquipmentByID
// @Accept  json
// @Produce  json
// @Param id path string true "Equipment ID (UUID)"
// @Success 200 {object} equipmentResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Security StaffAuth
// @Router /equipments/{id} [get]
func (h *Handler) getEquipmentByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, EquipmentNotFoundCode)
		return
	}

	equipment, err := h.services.Equipment.GetOneByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			errorResponse(c, EquipmentNotFoundCode)
			return
		}
		logger.Error("failed to get equipment", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toEquipmentResponse(equipment))
}

type canProcessResponse struct {
	CanProcess                bool `json:"can_process"`
	RequiresEmailVerification bool `json:"requires_email_verification"`
}

// @Summary Can Process Equipment
// @Tags Equipments
// @Description Check whether a registration can be processed or still awaits email verification
// @ModuleID canProcessEquipment
// @Accept  json
// @Produce  json
// @Param id path string true "Equipment ID (UUID)"
// @Success 200 {object} canProcessResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Security StaffAuth
// @Router /equipments/{id}/can-process [get]
func (h *Handler) canProcessEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, EquipmentNotFoundCode)
		return
	}

	check, err := h.services.Equipment.CanProcess(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			errorResponse(c, EquipmentNotFoundCode)
			return
		}
		logger.Error("failed to check equipment", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, canProcessResponse{
		CanProcess:                check.CanProcess,
		RequiresEmailVerification: check.RequiresEmailVerification,
	})
}

type updateEquipmentRequest struct {
	createEquipmentRequest

	ApplicationStatus  *string `json:"initial_application_status" binding:"omitempty,oneof=PENDING ACCEPTED REJECTED"`
	ApplicationRemarks string  `json:"initial_application_remarks" binding:"max=500"`
	InspectionResult   *string `json:"inspection_result" binding:"omitempty,oneof=PENDING PASSED FAILED"`
	InspectionRemarks  string  `json:"inspection_remarks" binding:"max=500"`
	ORNumber           string  `json:"or_number" binding:"max=100"`
	ORDate             *string `json:"or_date" binding:"omitempty,datetime=2006-01-02"`
}

// @Summary Update Equipment
// @Tags Equipments
// @Description Update a registration, including the review fields. Refused while a public submission's email is unverified.
// @ModuleID updateEquipment
// @Accept  json
// @Produce  json
// @Param id path string true "Equipment ID (UUID)"
// @Param input body updateEquipmentRequest true "Registration data"
// @Success 200 {object} equipmentResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Security StaffAuth
// @Router /equipments/{id} [put]
func (h *Handler) updateEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, EquipmentNotFoundCode)
		return
	}

	var req updateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	equipment := req.toDomain()
	equipment.ID = id
	if req.ApplicationStatus != nil {
		status := domain.ApplicationStatus(*req.ApplicationStatus)
		equipment.ApplicationStatus = &status
	}
	equipment.ApplicationRemarks = req.ApplicationRemarks
	if req.InspectionResult != nil {
		result := domain.InspectionResult(*req.InspectionResult)
		equipment.InspectionResult = &result
	}
	equipment.InspectionRemarks = req.InspectionRemarks
	equipment.ORNumber = req.ORNumber
	if req.ORDate != nil {
		orDate, _ := time.Parse(dateLayout, *req.ORDate)
		equipment.ORDate = &orDate
	}

	updated, err := h.services.Equipment.Update(c.Request.Context(), equipment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEquipmentNotFound):
			errorResponse(c, EquipmentNotFoundCode)
		case errors.Is(err, service.ErrEmailVerificationRequired):
			errorResponse(c, EmailVerificationRequiredCode)
		default:
			logger.Error("failed to update equipment", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toEquipmentResponse(updated))
}

// @Summary Delete Equipment
// @Tags Equipments
// @Description Delete a registration
// @ModuleID deleteEquipment
// @Accept  json
// @Produce  json
// @Param id path string true "Equipment ID (UUID)"
// @Success 204
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Security StaffAuth
// @Router /equipments/{id} [delete]
func (h *Handler) deleteEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, EquipmentNotFoundCode)
		return
	}

	if err := h.services.Equipment.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			errorResponse(c, EquipmentNotFoundCode)
			return
		}
		logger.Error("failed to delete equipment", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

type bulkImportRequest struct {
	Rows []importer.Row `json:"rows" binding:"required,min=1"`
}

type batchOutcomeResponse struct {
	Success   bool     `json:"success"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

func toBatchOutcomeResponse(outcome service.BatchOutcome) batchOutcomeResponse {
	return batchOutcomeResponse{
		Success:   outcome.Success(),
		Succeeded: outcome.Succeeded,
		Failed:    outcome.Failed,
		Errors:    outcome.Errors,
	}
}

// @Summary Bulk Import Equipments
// @Tags Equipments
// @Description Import registrations from spreadsheet rows keyed by column header. Rows are applied independently; a failing row is reported with its 1-based row number and does not stop the rest.
// @ModuleID bulkImportEquipments
// @Accept  json
// @Produce  json
// @Param input body bulkImportRequest true "Rows keyed by column header"
// @Success 200 {object} batchOutcomeResponse
// @Failure 400 {object} ValidationErrorStruct
// @Security StaffAuth
// @Router /equipments/bulk-import [post]
func (h *Handler) bulkImportEquipments(c *gin.Context) {
	var req bulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	outcome := h.services.Equipment.BulkImport(c.Request.Context(), req.Rows)

	c.JSON(http.StatusOK, toBatchOutcomeResponse(outcome))
}

type bulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// @Summary Bulk Delete Equipments
// @Tags Equipments
// @Description Delete registrations by ID. Deletions are applied independently; a failing ID is reported and does not stop the rest.
// @ModuleID bulkDeleteEquipments
// @Accept  json
// @Produce  json
// @Param input body bulkDeleteRequest true "Equipment IDs"
// @Success 200 {object} batchOutcomeResponse
// @Failure 400 {object} ValidationErrorStruct
// @Security StaffAuth
// @Router /equipments/bulk-delete [post]
func (h *Handler) bulkDeleteEquipments(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	outcome := h.services.Equipment.BulkDelete(c.Request.Context(), req.IDs)

	c.JSON(http.StatusOK, toBatchOutcomeResponse(outcome))
}
