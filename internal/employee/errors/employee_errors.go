package employeeerrors

import (
	"net/http"

	"github.com/SaiAryan1784/HRMS-Lite/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeEmailExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this email already exists",
		http.StatusConflict,
	)
	ErrEmployeeHasAttendance = apperror.New(
		apperror.CodeConflict,
		"Employee has attendance records and cannot be deleted",
		http.StatusConflict,
	)
)
