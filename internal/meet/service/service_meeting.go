package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/repo"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/id"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/log"
)

/**
 * @time: 2024/11/5 19:20
 * @file: service_meeting.go
 * @description: meeting lifecycle logic
 */

type MeetingService struct {
	meetingRepo repo.IMeetingRepository
}

func NewMeetingService(meetingRepo repo.IMeetingRepository) *MeetingService {
	return &MeetingService{meetingRepo: meetingRepo}
}

// CreateMeeting inserts the meeting with a generated shareable code and
// auto-joins the creator with status ACCEPT. Both rows land in one
// transaction at the repository.
func (ms *MeetingService) CreateMeeting(ownerId string, req *model.CreateMeetingReq) (*model.Meeting, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	status := req.Status
	if status == "" {
		status = model.MeetingStatusIdle
	}
	if !model.ValidMeetingStatus(status) {
		return nil, ErrInvalidStatus
	}

	meeting := &model.Meeting{
		MeetingId:   id.ShortId(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		UserId:      ownerId,
		ScheduledAt: req.ScheduledAt,
	}
	owner := &model.Participant{
		ParticipantId: id.GetUUID(),
		MeetingId:     meeting.MeetingId,
		UserId:        ownerId,
		Status:        model.ParticipantStatusAccept,
		JoinedAt:      time.Now().Unix(),
	}

	if err := ms.meetingRepo.CreateMeetingWithOwner(meeting, owner); err != nil {
		log.Errorw("failed to create meeting", "ownerId", ownerId, "error", err)
		return nil, err
	}

	return meeting, nil
}

func (ms *MeetingService) GetMeeting(meetingId string) (*model.Meeting, error) {
	meeting, err := ms.meetingRepo.GetMeeting(meetingId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return meeting, nil
}

func (ms *MeetingService) ListMeetings(userId string) ([]model.Meeting, error) {
	return ms.meetingRepo.ListMeetingsForUser(userId)
}

// UpdateMeeting applies partial field updates scoped to the owner. A status
// change must follow the lifecycle; an id owned by someone else matches zero
// rows and succeeds silently.
func (ms *MeetingService) UpdateMeeting(meetingId, callerId string, req *model.UpdateMeetingReq) error {
	if meetingId == "" {
		return ErrMeetingIdRequired
	}

	fields := make(map[string]any)
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.ScheduledAt != 0 {
		fields["scheduled_at"] = req.ScheduledAt
	}
	if req.Status != "" {
		if !model.ValidMeetingStatus(req.Status) {
			return ErrInvalidStatus
		}
		current, err := ms.GetMeeting(meetingId)
		if err != nil {
			return err
		}
		if !model.ValidStatusTransition(current.Status, req.Status) {
			return ErrInvalidStatusTransition
		}
		fields["status"] = req.Status
	}
	if len(fields) == 0 {
		return nil
	}

	rows, err := ms.meetingRepo.UpdateMeeting(meetingId, callerId, fields)
	if err != nil {
		log.Errorw("failed to update meeting", "meetingId", meetingId, "error", err)
		return err
	}
	if rows == 0 {
		log.Warnw("meeting update matched no rows", "meetingId", meetingId, "callerId", callerId)
	}
	return nil
}

// DeleteMeeting is idempotent: deleting an absent meeting succeeds.
func (ms *MeetingService) DeleteMeeting(meetingId string) error {
	if meetingId == "" {
		return ErrMeetingIdRequired
	}
	return ms.meetingRepo.DeleteMeeting(meetingId)
}
