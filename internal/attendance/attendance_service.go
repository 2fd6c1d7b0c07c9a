package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	attendanceerrors "github.com/SaiAryan1784/HRMS-Lite/internal/attendance/errors"
	"github.com/SaiAryan1784/HRMS-Lite/internal/events"
	"github.com/SaiAryan1784/HRMS-Lite/internal/messaging/kafka"
	"github.com/SaiAryan1784/HRMS-Lite/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, f Filter, page, limit int) ([]AttendanceResponse, int64, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

// NormalizeDate truncates a timestamp to UTC midnight of the same calendar
// day. The normalized day is the uniqueness key for marking.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDateInput accepts either a full RFC3339 timestamp or a bare
// YYYY-MM-DD date, as the web client sends both.
func ParseDateInput(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("mark attendance requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	parsed, err := ParseDateInput(req.Date)
	if err != nil {
		s.logger.Warn("mark attendance invalid date",
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	day := NormalizeDate(parsed)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark attendance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("mark attendance employee lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if !exists {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	// Fast path only; the unique index on (employee_id, attendance_date)
	// is what actually guarantees at most one record per pair.
	if _, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, day); err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrDuplicateForDate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("mark attendance duplicate check failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	now := time.Now().UTC()
	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     uuid.MustParse(req.EmployeeID),
		AttendanceDate: day,
		Status:         req.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("mark attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.AttendanceMarkedEvent{
			EventType:    "attendance_marked",
			RequestID:    rid,
			AttendanceID: row.ID.String(),
			EmployeeID:   row.EmployeeID.String(),
			Date:         day.Format("2006-01-02"),
			Status:       row.Status,
			OccurredAt:   now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return AttendanceResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "attendance",
			AggregateID:   row.ID.String(),
			EventType:     event.EventType,
			Topic:         events.AttendanceMarkedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("mark attendance outbox persist failed",
				zap.String("attendance_id", row.ID.String()),
				zap.Error(err),
			)
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("mark attendance commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("mark attendance success",
		zap.String("request_id", rid),
		zap.String("attendance_id", row.ID.String()),
	)

	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context, f Filter, page, limit int) ([]AttendanceResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	rows, total, err := s.repo.FindPage(ctx, f, offset, limit)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, 0, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, total, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (AttendanceResponse, error) {
	s.logger.Debug("update attendance status requested",
		zap.String("attendance_id", id),
		zap.String("status", req.Status),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update status begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	// Only the status may change; employee and date are immutable.
	row.Status = req.Status
	row.UpdatedAt = time.Now().UTC()

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("update status persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update status commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("update attendance status success",
		zap.String("attendance_id", id),
		zap.String("status", row.Status),
	)

	return mapToResponse(*row), nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.AttendanceDate.UTC().Format(time.RFC3339),
		Status:     a.Status,
	}
	if a.Employee != nil {
		resp.Employee = &EmployeeSummary{
			FullName:   a.Employee.FullName,
			Department: a.Employee.Department,
		}
	}
	return resp
}
