package attendance

import (
	"errors"
	"strings"

	attendanceerrors "github.com/SaiAryan1784/HRMS-Lite/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage failures into typed errors. The
// unique index on (employee_id, attendance_date) resolves the
// check-then-insert race: a concurrent mark for the same pair surfaces
// here as 23505 and is reported as the same conflict the pre-check gives.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendances_employee_date" {
			return attendanceerrors.ErrDuplicateForDate
		}
		if pgErr.Code == "23503" && pgErr.ConstraintName == "fk_attendances_employee" {
			return attendanceerrors.ErrEmployeeNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendances_employee_date") {
		return attendanceerrors.ErrDuplicateForDate
	}

	return err
}
