package overtime

import (
	"context"
	"testing"
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/overtime"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOvertimeRepo struct {
	records map[string]overtime.Record
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, rec overtime.Record) (overtime.Record, error) {
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (overtime.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return overtime.Record{}, overtime.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeOvertimeRepo) GetApprovedByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]overtime.Record, error) {
	var out []overtime.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Status == overtime.StatusApproved &&
			!rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]overtime.Record, error) {
	var out []overtime.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) Update(ctx context.Context, rec overtime.Record) error {
	if _, ok := f.records[rec.ID]; !ok {
		return overtime.ErrRecordNotFound
	}
	f.records[rec.ID] = rec
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

func newTestService() (overtime.OvertimeService, *fakeOvertimeRepo) {
	repo := &fakeOvertimeRepo{records: make(map[string]overtime.Record)}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Code: "EMP-001", IsActive: true},
	}}
	return NewOvertimeService(repo, employees, decimal.NewFromFloat(1.5)), repo
}

func TestSubmit_StartsPending(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Submit(context.Background(), overtime.SubmitOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-16",
		Hours:      decimal.NewFromInt(3),
		Multiplier: decimal.NewFromFloat(1.5),
	})
	require.NoError(t, err)

	assert.Equal(t, string(overtime.StatusPending), resp.Status)
	assert.Equal(t, "2025-06-16", resp.Date)
	assert.Nil(t, resp.ApprovedBy)

	rec := repo.records[resp.ID]
	assert.Equal(t, overtime.StatusPending, rec.Status)
}

func TestSubmit_DefaultMultiplierApplied(t *testing.T) {
	svc, repo := newTestService()

	// No multiplier on the request: the configured default fills in.
	resp, err := svc.Submit(context.Background(), overtime.SubmitOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-16",
		Hours:      decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(1.5).Equal(resp.Multiplier), "multiplier = %s", resp.Multiplier)
	assert.True(t, decimal.NewFromFloat(1.5).Equal(repo.records[resp.ID].Multiplier))
}

func TestSubmit_ExplicitMultiplierKept(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Submit(context.Background(), overtime.SubmitOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       "2025-06-16",
		Hours:      decimal.NewFromInt(3),
		Multiplier: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2).Equal(resp.Multiplier))
}

func TestSubmit_Validation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name string
		req  overtime.SubmitOvertimeRequest
	}{
		{
			name: "zero hours",
			req: overtime.SubmitOvertimeRequest{
				EmployeeID: "emp-1", Date: "2025-06-16",
				Hours: decimal.Zero, Multiplier: decimal.NewFromFloat(1.5),
			},
		},
		{
			name: "multiplier below one",
			req: overtime.SubmitOvertimeRequest{
				EmployeeID: "emp-1", Date: "2025-06-16",
				Hours: decimal.NewFromInt(2), Multiplier: decimal.NewFromFloat(0.5),
			},
		},
		{
			name: "bad date",
			req: overtime.SubmitOvertimeRequest{
				EmployeeID: "emp-1", Date: "16/06/2025",
				Hours: decimal.NewFromInt(2), Multiplier: decimal.NewFromFloat(1.5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestSubmit_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Submit(context.Background(), overtime.SubmitOvertimeRequest{
		EmployeeID: "ghost", Date: "2025-06-16",
		Hours: decimal.NewFromInt(2), Multiplier: decimal.NewFromFloat(1.5),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApprove(t *testing.T) {
	svc, repo := newTestService()

	submitted, err := svc.Submit(context.Background(), overtime.SubmitOvertimeRequest{
		EmployeeID: "emp-1", Date: "2025-06-16",
		Hours: decimal.NewFromInt(3), Multiplier: decimal.NewFromFloat(1.5),
	})
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), submitted.ID, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, string(overtime.StatusApproved), approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin-1", *approved.ApprovedBy)

	rec := repo.records[submitted.ID]
	require.NotNil(t, rec.ApprovedAt)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	svc, _ := newTestService()

	submitted, err := svc.Submit(context.Background(), overtime.SubmitOvertimeRequest{
		EmployeeID: "emp-1", Date: "2025-06-16",
		Hours: decimal.NewFromInt(3), Multiplier: decimal.NewFromFloat(1.5),
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), submitted.ID, "admin-1")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), submitted.ID, "admin-2")
	assert.ErrorIs(t, err, overtime.ErrAlreadyProcessed)
}

func TestReject_ThenApproveFails(t *testing.T) {
	svc, _ := newTestService()

	submitted, err := svc.Submit(context.Background(), overtime.SubmitOvertimeRequest{
		EmployeeID: "emp-1", Date: "2025-06-16",
		Hours: decimal.NewFromInt(3), Multiplier: decimal.NewFromFloat(1.5),
	})
	require.NoError(t, err)

	rejected, err := svc.Reject(context.Background(), submitted.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, string(overtime.StatusRejected), rejected.Status)

	_, err = svc.Approve(context.Background(), submitted.ID, "admin-2")
	assert.ErrorIs(t, err, overtime.ErrAlreadyProcessed)
}

func TestApprove_UnknownRecord(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Approve(context.Background(), "missing", "admin-1")
	assert.ErrorIs(t, err, overtime.ErrRecordNotFound)
}

func TestListByEmployee(t *testing.T) {
	svc, _ := newTestService()

	for _, date := range []string{"2025-06-10", "2025-06-16", "2025-07-01"} {
		_, err := svc.Submit(context.Background(), overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: date,
			Hours: decimal.NewFromInt(2), Multiplier: decimal.NewFromFloat(1.5),
		})
		require.NoError(t, err)
	}

	records, err := svc.ListByEmployee(context.Background(), "emp-1", "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListByEmployee_InvalidRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ListByEmployee(context.Background(), "emp-1", "June 1st", "2025-06-30")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
