package leave

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/database"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

// autoNoteFormat tags the shifts an approval materializes, so a later
// rejection or deletion can find and remove exactly those shifts.
const autoNoteFormat = "Automatically created from %s request"

func autoNote(requestType shift.Type) string {
	return fmt.Sprintf(autoNoteFormat, requestType)
}

type LeaveServiceImpl struct {
	tx        database.TxRunner
	leaveRepo leave.Repository
	shiftRepo shift.Repository
}

func NewLeaveService(tx database.TxRunner, leaveRepo leave.Repository, shiftRepo shift.Repository) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:        tx,
		leaveRepo: leaveRepo,
		shiftRepo: shiftRepo,
	}
}

// Create files a leave request for the acting user. The period must not
// intersect any of their pending or approved requests.
func (s *LeaveServiceImpl) Create(ctx context.Context, actor user.Actor, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	overlapping, err := s.leaveRepo.FindOverlapping(ctx, actor.ID, start, end, "")
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if len(overlapping) > 0 {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:      actor.ID,
		RequestType: shift.Type(req.RequestType),
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.NewLeaveRequestResponse(created), nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, actor user.Actor, id string) (leave.LeaveRequestResponse, error) {
	lr, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !actor.IsAdmin() && !actor.Owns(lr.UserID) {
		return leave.LeaveRequestResponse{}, user.ErrNotRecordOwner
	}

	return leave.NewLeaveRequestResponse(lr), nil
}

// Update edits a leave request. Owners may change the type, period and
// reason only while the request is pending; status changes are admin-only.
// Approving materializes one approved leave shift per covered day, and
// flipping an approved request to rejected removes them again, both inside
// one transaction with the status write.
func (s *LeaveServiceImpl) Update(ctx context.Context, actor user.Actor, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	existing, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !actor.IsAdmin() && !actor.Owns(existing.UserID) {
		return leave.LeaveRequestResponse{}, user.ErrNotRecordOwner
	}
	if req.Status != nil && !actor.IsAdmin() {
		return leave.LeaveRequestResponse{}, user.ErrAdminAccessRequired
	}

	fieldEdit := req.RequestType != nil || req.StartDate != nil || req.Reason != nil
	if fieldEdit && existing.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveApproved
	}

	updated := existing

	if req.RequestType != nil {
		updated.RequestType = shift.Type(*req.RequestType)
	}
	if req.StartDate != nil && req.EndDate != nil {
		updated.StartDate, _ = validator.IsValidDate(*req.StartDate)
		updated.EndDate, _ = validator.IsValidDate(*req.EndDate)

		overlapping, err := s.leaveRepo.FindOverlapping(ctx, updated.UserID, updated.StartDate, updated.EndDate, updated.ID)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if len(overlapping) > 0 {
			return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
		}
	}
	if req.Reason != nil {
		updated.Reason = *req.Reason
	}

	if req.Status != nil {
		updated.Status = leave.Status(*req.Status)
		switch updated.Status {
		case leave.StatusApproved:
			updated.ApprovedBy = &actor.ID
			updated.RejectionReason = nil
		case leave.StatusRejected:
			updated.RejectionReason = req.RejectionReason
		}
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.leaveRepo.Update(txCtx, updated); err != nil {
			return err
		}

		if updated.Status == leave.StatusApproved && existing.Status != leave.StatusApproved {
			return s.materialize(txCtx, actor, updated)
		}
		if updated.Status == leave.StatusRejected && existing.Status == leave.StatusApproved {
			return s.retract(txCtx, updated)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	refreshed, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.NewLeaveRequestResponse(refreshed), nil
}

// Delete removes a leave request. Owners may only delete pending ones;
// deleting an approved request also retracts the shifts it generated.
func (s *LeaveServiceImpl) Delete(ctx context.Context, actor user.Actor, id string) error {
	existing, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && !actor.Owns(existing.UserID) {
		return user.ErrNotRecordOwner
	}
	if !actor.IsAdmin() && existing.Status == leave.StatusApproved {
		return leave.ErrLeaveApproved
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if existing.Status == leave.StatusApproved {
			if err := s.retract(txCtx, existing); err != nil {
				return err
			}
		}
		return s.leaveRepo.Delete(txCtx, id)
	})
}

// List returns leave requests for one user. Employees see their own;
// admins may pass any user id. status narrows the result when valid.
func (s *LeaveServiceImpl) List(ctx context.Context, actor user.Actor, userID, status string) ([]leave.LeaveRequestResponse, error) {
	if userID == "" {
		userID = actor.ID
	}
	if !actor.IsAdmin() && !actor.Owns(userID) {
		return nil, user.ErrNotRecordOwner
	}

	var statusFilter leave.Status
	if leave.IsValidStatus(leave.Status(status)) {
		statusFilter = leave.Status(status)
	}

	requests, err := s.leaveRepo.FindByUser(ctx, userID, statusFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(lr))
	}
	return responses, nil
}

// ListPending returns the admin approval queue, oldest first.
func (s *LeaveServiceImpl) ListPending(ctx context.Context, actor user.Actor) ([]leave.LeaveRequestResponse, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrAdminAccessRequired
	}

	requests, err := s.leaveRepo.FindPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(lr))
	}
	return responses, nil
}

// AttachDocument records a supporting document on a leave request. The
// stored path gets a generated name so uploads cannot collide.
func (s *LeaveServiceImpl) AttachDocument(ctx context.Context, actor user.Actor, requestID, fileName string) (leave.DocumentResponse, error) {
	if validator.IsEmpty(fileName) {
		return leave.DocumentResponse{}, validator.ValidationErrors{{
			Field:   "file",
			Message: "file name is required",
		}}
	}

	lr, err := s.leaveRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.DocumentResponse{}, err
	}

	if !actor.IsAdmin() && !actor.Owns(lr.UserID) {
		return leave.DocumentResponse{}, user.ErrNotRecordOwner
	}

	doc, err := s.leaveRepo.AddDocument(ctx, requestID, leave.Document{
		Name: fileName,
		Path: "uploads/leave/" + uuid.NewString() + filepath.Ext(fileName),
	})
	if err != nil {
		return leave.DocumentResponse{}, err
	}

	return leave.DocumentResponse{
		ID:         doc.ID,
		Name:       doc.Name,
		Path:       doc.Path,
		UploadedAt: doc.UploadedAt.Format(time.RFC3339),
	}, nil
}

// materialize inserts one approved leave shift per day of the request's
// period. Days that already carry a shift of the request's type are
// skipped, so re-running an approval never duplicates shifts.
func (s *LeaveServiceImpl) materialize(ctx context.Context, actor user.Actor, lr leave.LeaveRequest) error {
	var toCreate []shift.Shift

	for day := lr.StartDate; !day.After(lr.EndDate); day = day.AddDate(0, 0, 1) {
		exists, err := s.shiftRepo.ExistsForUserDateType(ctx, lr.UserID, day, lr.RequestType)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		startTime, endTime, err := shift.Span(lr.RequestType, day)
		if err != nil {
			return err
		}

		toCreate = append(toCreate, shift.Shift{
			UserID:          lr.UserID,
			Date:            day,
			ShiftType:       lr.RequestType,
			StartTime:       startTime,
			EndTime:         endTime,
			Status:          shift.StatusApproved,
			Notes:           autoNote(lr.RequestType),
			IsUserSuggested: false,
			CreatedBy:       actor.ID,
		})
	}

	return s.shiftRepo.CreateMany(ctx, toCreate)
}

// retract removes the auto-generated shifts of an approved request. Only
// shifts carrying the generated-note tag are touched; a manually created
// shift of the same type on an overlapping day survives.
func (s *LeaveServiceImpl) retract(ctx context.Context, lr leave.LeaveRequest) error {
	_, err := s.shiftRepo.DeleteGenerated(ctx, lr.UserID, lr.RequestType, lr.StartDate, lr.EndDate, autoNote(lr.RequestType))
	return err
}
