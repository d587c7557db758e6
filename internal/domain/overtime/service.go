package overtime

import "context"

type OvertimeService interface {
	Submit(ctx context.Context, req SubmitOvertimeRequest) (RecordResponse, error)
	Approve(ctx context.Context, id string, approvedBy string) (RecordResponse, error)
	Reject(ctx context.Context, id string, rejectedBy string) (RecordResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, start, end string) ([]RecordResponse, error)
}
