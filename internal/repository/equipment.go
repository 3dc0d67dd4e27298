package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chainsaw-registry/backend/internal/db"
	"github.com/chainsaw-registry/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type equipmentRepository struct {
	db *sqlx.DB
}

func newEquipmentRepository(db *sqlx.DB) *equipmentRepository {
	return &equipmentRepository{
		db: db,
	}
}

const equipmentColumns = `
	bin_to_uuid(id) as id,
	owner_first_name, owner_middle_name, owner_last_name, owner_address,
	owner_contact_number, owner_email, owner_prefer_contact_method, owner_id_url,
	brand, model, serial_number, guide_bar_length, horse_power, fuel_type,
	date_acquired, stencil_of_serial_no, other_info, intended_use, is_new,
	registration_application_url, official_receipt_url, spa_url,
	stencil_serial_number_picture_url, chainsaw_picture_url,
	previous_certificate_number, renewal_application_url, renewal_previous_certificate_url,
	forest_tenure_agreement_url, business_permit_url, certificate_of_registration_url,
	lgu_business_permit_url, wood_processing_permit_url, government_certification_url,
	data_privacy_consent, email_verified,
	initial_application_status, initial_application_remarks,
	inspection_result, inspection_remarks, or_number, or_date,
	created_at, updated_at`

// approvedCondition narrows aggregate queries to fully approved records,
// matching what the dashboard reports on.
const approvedCondition = `initial_application_status = 'ACCEPTED' AND inspection_result = 'PASSED'`

func (r *equipmentRepository) Create(ctx context.Context, equipment *domain.Equipment) error {
	const op = "repository.equipment.Create"

	const query = `
	INSERT INTO equipment (
		id,
		owner_first_name, owner_middle_name, owner_last_name, owner_address,
		owner_contact_number, owner_email, owner_prefer_contact_method, owner_id_url,
		brand, model, serial_number, guide_bar_length, horse_power, fuel_type,
		date_acquired, stencil_of_serial_no, other_info, intended_use, is_new,
		registration_application_url, official_receipt_url, spa_url,
		stencil_serial_number_picture_url, chainsaw_picture_url,
		previous_certificate_number, renewal_application_url, renewal_previous_certificate_url,
		forest_tenure_agreement_url, business_permit_url, certificate_of_registration_url,
		lgu_business_permit_url, wood_processing_permit_url, government_certification_url,
		data_privacy_consent, email_verified,
		initial_application_status, initial_application_remarks,
		inspection_result, inspection_remarks, or_number, or_date,
		created_at
	) VALUES (
		uuid_to_bin(:id),
		:owner_first_name, :owner_middle_name, :owner_last_name, :owner_address,
		:owner_contact_number, :owner_email, :owner_prefer_contact_method, :owner_id_url,
		:brand, :model, :serial_number, :guide_bar_length, :horse_power, :fuel_type,
		:date_acquired, :stencil_of_serial_no, :other_info, :intended_use, :is_new,
		:registration_application_url, :official_receipt_url, :spa_url,
		:stencil_serial_number_picture_url, :chainsaw_picture_url,
		:previous_certificate_number, :renewal_application_url, :renewal_previous_certificate_url,
		:forest_tenure_agreement_url, :business_permit_url, :certificate_of_registration_url,
		:lgu_business_permit_url, :wood_processing_permit_url, :government_certification_url,
		:data_privacy_consent, :email_verified,
		:initial_application_status, :initial_application_remarks,
		:inspection_result, :inspection_remarks, :or_number, :or_date,
		:created_at
	)`

	res, err := r.db.NamedExecContext(ctx, query, equipment)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("%s: insert equipment failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows != 1 {
		return fmt.Errorf("%s: expected 1 row affected, got %d", op, rows)
	}

	return nil
}

func (r *equipmentRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Equipment, error) {
	const op = "repository.equipment.GetOneByID"

	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = uuid_to_bin(?)`

	var equipment domain.Equipment
	if err := r.db.GetContext(ctx, &equipment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select equipment failed: %w", op, err)
	}

	return &equipment, nil
}

func buildFilterClause(filters *EquipmentFilters) (string, []interface{}) {
	if filters == nil {
		return "", nil
	}

	var (
		conds []string
		args  []interface{}
	)

	// Column filters win over the general search term.
	if filters.Brand != "" || filters.Model != "" || filters.SerialNumber != "" {
		if filters.Brand != "" {
			conds = append(conds, "brand LIKE ?")
			args = append(args, "%"+filters.Brand+"%")
		}
		if filters.Model != "" {
			conds = append(conds, "model LIKE ?")
			args = append(args, "%"+filters.Model+"%")
		}
		if filters.SerialNumber != "" {
			conds = append(conds, "serial_number LIKE ?")
			args = append(args, "%"+filters.SerialNumber+"%")
		}
	} else if filters.Search != "" {
		conds = append(conds, `(brand LIKE ? OR model LIKE ? OR serial_number LIKE ?
			OR owner_first_name LIKE ? OR owner_last_name LIKE ? OR owner_email LIKE ?)`)
		term := "%" + filters.Search + "%"
		args = append(args, term, term, term, term, term, term)
	}

	if len(filters.FuelTypes) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(filters.FuelTypes)), ",")
		conds = append(conds, "fuel_type IN ("+placeholders+")")
		for _, ft := range filters.FuelTypes {
			args = append(args, ft)
		}
	}

	if len(filters.UseTypes) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(filters.UseTypes)), ",")
		conds = append(conds, "intended_use IN ("+placeholders+")")
		for _, ut := range filters.UseTypes {
			args = append(args, ut)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *equipmentRepository) GetAll(ctx context.Context, limit, offset int, filters *EquipmentFilters) ([]*domain.Equipment, error) {
	const op = "repository.equipment.GetAll"

	where, args := buildFilterClause(filters)
	query := `SELECT ` + equipmentColumns + ` FROM equipment` + where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	equipments := make([]*domain.Equipment, 0)
	if err := r.db.SelectContext(ctx, &equipments, query, args...); err != nil {
		return nil, fmt.Errorf("%s: select equipments failed: %w", op, err)
	}

	return equipments, nil
}

func (r *equipmentRepository) Count(ctx context.Context, filters *EquipmentFilters) (int64, error) {
	const op = "repository.equipment.Count"

	where, args := buildFilterClause(filters)

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM equipment`+where, args...); err != nil {
		return 0, fmt.Errorf("%s: count equipments failed: %w", op, err)
	}

	return total, nil
}

func (r *equipmentRepository) Update(ctx context.Context, equipment *domain.Equipment) error {
	const op = "repository.equipment.Update"

	const query = `
	UPDATE equipment SET
		owner_first_name = :owner_first_name,
		owner_middle_name = :owner_middle_name,
		owner_last_name = :owner_last_name,
		owner_address = :owner_address,
		owner_contact_number = :owner_contact_number,
		owner_email = :owner_email,
		owner_prefer_contact_method = :owner_prefer_contact_method,
		owner_id_url = :owner_id_url,
		brand = :brand,
		model = :model,
		serial_number = :serial_number,
		guide_bar_length = :guide_bar_length,
		horse_power = :horse_power,
		fuel_type = :fuel_type,
		date_acquired = :date_acquired,
		stencil_of_serial_no = :stencil_of_serial_no,
		other_info = :other_info,
		intended_use = :intended_use,
		is_new = :is_new,
		registration_application_url = :registration_application_url,
		official_receipt_url = :official_receipt_url,
		spa_url = :spa_url,
		stencil_serial_number_picture_url = :stencil_serial_number_picture_url,
		chainsaw_picture_url = :chainsaw_picture_url,
		previous_certificate_number = :previous_certificate_number,
		renewal_application_url = :renewal_application_url,
		renewal_previous_certificate_url = :renewal_previous_certificate_url,
		forest_tenure_agreement_url = :forest_tenure_agreement_url,
		business_permit_url = :business_permit_url,
		certificate_of_registration_url = :certificate_of_registration_url,
		lgu_business_permit_url = :lgu_business_permit_url,
		wood_processing_permit_url = :wood_processing_permit_url,
		government_certification_url = :government_certification_url,
		data_privacy_consent = :data_privacy_consent,
		initial_application_status = :initial_application_status,
		initial_application_remarks = :initial_application_remarks,
		inspection_result = :inspection_result,
		inspection_remarks = :inspection_remarks,
		or_number = :or_number,
		or_date = :or_date,
		updated_at = NOW()
	WHERE id = uuid_to_bin(:id)`

	res, err := r.db.NamedExecContext(ctx, query, equipment)
	if err != nil {
		return fmt.Errorf("%s: update equipment failed: %w", op, err)
	}

	if _, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.equipment.Delete"

	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = uuid_to_bin(?)`, id)
	if err != nil {
		return fmt.Errorf("%s: delete equipment failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *equipmentRepository) FindUnverifiedByEmail(ctx context.Context, email string) (*domain.Equipment, error) {
	const op = "repository.equipment.FindUnverifiedByEmail"

	query := `SELECT ` + equipmentColumns + `
	FROM equipment
	WHERE owner_email = ? AND email_verified = FALSE
	ORDER BY created_at DESC
	LIMIT 1`

	var equipment domain.Equipment
	if err := r.db.GetContext(ctx, &equipment, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select unverified equipment failed: %w", op, err)
	}

	return &equipment, nil
}

func (r *equipmentRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	const op = "repository.equipment.MarkEmailVerified"

	// Conditional update: the WHERE guard makes concurrent verification
	// attempts race on the database row, so only one can flip the flag.
	const query = `
	UPDATE equipment
	SET email_verified = TRUE, updated_at = NOW()
	WHERE id = uuid_to_bin(?) AND email_verified = FALSE`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: update equipment failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *equipmentRepository) CountApproved(ctx context.Context) (int64, error) {
	const op = "repository.equipment.CountApproved"

	var total int64
	query := `SELECT COUNT(*) FROM equipment WHERE ` + approvedCondition
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("%s: count failed: %w", op, err)
	}

	return total, nil
}

func (r *equipmentRepository) CountApprovedCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	const op = "repository.equipment.CountApprovedCreatedBetween"

	var total int64
	query := `SELECT COUNT(*) FROM equipment WHERE ` + approvedCondition + ` AND created_at >= ? AND created_at < ?`
	if err := r.db.GetContext(ctx, &total, query, from, to); err != nil {
		return 0, fmt.Errorf("%s: count failed: %w", op, err)
	}

	return total, nil
}

// CountExpired applies the two-year validity window per record: a first-time
// registration expires two years after acquisition, a renewal two years
// after it was recorded. Filtering on a single date column is wrong here.
func (r *equipmentRepository) CountExpired(ctx context.Context, now time.Time) (int64, error) {
	const op = "repository.equipment.CountExpired"

	cutoff := now.AddDate(-2, 0, 0)

	var total int64
	query := `SELECT COUNT(*) FROM equipment WHERE ` + approvedCondition + `
	AND ((is_new = TRUE AND date_acquired < ?) OR (is_new = FALSE AND created_at < ?))`
	if err := r.db.GetContext(ctx, &total, query, cutoff, cutoff); err != nil {
		return 0, fmt.Errorf("%s: count failed: %w", op, err)
	}

	return total, nil
}

func (r *equipmentRepository) CountExpiringSoon(ctx context.Context, now time.Time) (int64, error) {
	const op = "repository.equipment.CountExpiringSoon"

	cutoff := now.AddDate(-2, 0, 0)
	warning := cutoff.AddDate(0, 0, 30)

	var total int64
	query := `SELECT COUNT(*) FROM equipment WHERE ` + approvedCondition + `
	AND ((is_new = TRUE AND date_acquired >= ? AND date_acquired <= ?)
	  OR (is_new = FALSE AND created_at >= ? AND created_at <= ?))`
	if err := r.db.GetContext(ctx, &total, query, cutoff, warning, cutoff, warning); err != nil {
		return 0, fmt.Errorf("%s: count failed: %w", op, err)
	}

	return total, nil
}

func (r *equipmentRepository) CountApprovedByUseType(ctx context.Context) ([]UseTypeCount, error) {
	const op = "repository.equipment.CountApprovedByUseType"

	counts := make([]UseTypeCount, 0)
	query := `SELECT intended_use, COUNT(*) as cnt FROM equipment WHERE ` + approvedCondition + ` GROUP BY intended_use`
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("%s: select failed: %w", op, err)
	}

	return counts, nil
}

func (r *equipmentRepository) CountApprovedByMonth(ctx context.Context, from time.Time) ([]MonthlyCount, error) {
	const op = "repository.equipment.CountApprovedByMonth"

	counts := make([]MonthlyCount, 0)
	query := `SELECT DATE_FORMAT(created_at, '%Y-%m') as month, COUNT(*) as cnt
	FROM equipment
	WHERE ` + approvedCondition + ` AND created_at >= ?
	GROUP BY month
	ORDER BY month`
	if err := r.db.SelectContext(ctx, &counts, query, from); err != nil {
		return nil, fmt.Errorf("%s: select failed: %w", op, err)
	}

	return counts, nil
}
