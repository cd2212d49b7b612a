package attendance

import (
	"context"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

type AttendanceService interface {
	RecordAttendance(ctx context.Context, employeeID string, req RecordAttendanceRequest) (AttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, filter query.Filter, page pagination.PageRequest) (pagination.PageResult[AttendanceResponse], error)
}
