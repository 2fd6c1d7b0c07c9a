package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/SaiAryan1784/HRMS-Lite/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage-level failures into typed errors.
// The unique index is the authoritative duplicate guard; the pre-check in
// the service only exists for a better error message.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employees_email" {
			return employeeerrors.ErrEmployeeEmailExists
		}
		if pgErr.Code == "23503" && pgErr.ConstraintName == "fk_attendances_employee" {
			return employeeerrors.ErrEmployeeHasAttendance
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employees_email") {
		return employeeerrors.ErrEmployeeEmailExists
	}

	return err
}
