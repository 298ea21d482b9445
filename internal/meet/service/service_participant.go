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
 * @time: 2024/11/5 20:11
 * @file: service_participant.go
 * @description: participant logic, idempotent join
 */

type ParticipantService struct {
	participantRepo repo.IParticipantRepository
}

func NewParticipantService(participantRepo repo.IParticipantRepository) *ParticipantService {
	return &ParticipantService{participantRepo: participantRepo}
}

func (ps *ParticipantService) GetParticipant(participantId, userId string) (*model.Participant, error) {
	if participantId == "" {
		return nil, ErrParticipantNotFound
	}
	p, err := ps.participantRepo.GetParticipant(participantId, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}

func (ps *ParticipantService) ListParticipants(userId string) ([]model.Participant, error) {
	return ps.participantRepo.ListParticipantsForUser(userId)
}

func (ps *ParticipantService) UpdateParticipant(participantId, userId string, req *model.UpdateParticipantReq) error {
	fields := make(map[string]any)
	if req.Status != "" {
		fields["status"] = req.Status
	}
	if len(fields) == 0 {
		return nil
	}
	_, err := ps.participantRepo.UpdateParticipant(participantId, userId, fields)
	return err
}

func (ps *ParticipantService) DeleteParticipant(participantId string) error {
	return ps.participantRepo.DeleteParticipant(participantId)
}

// JoinMeeting adds (meetingId, userId) at most once. A second join of the
// same pair reports joined=false with no error, including the case where a
// concurrent request won the insert race.
func (ps *ParticipantService) JoinMeeting(meetingId, userId string) (joined bool, err error) {
	_, err = ps.participantRepo.GetByMeetingAndUser(meetingId, userId)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	participant := &model.Participant{
		ParticipantId: id.GetUUID(),
		MeetingId:     meetingId,
		UserId:        userId,
		Status:        model.ParticipantStatusAccept,
		JoinedAt:      time.Now().Unix(),
	}
	if err := ps.participantRepo.AddParticipant(participant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		log.Errorw("failed to join meeting", "meetingId", meetingId, "userId", userId, "error", err)
		return false, err
	}
	return true, nil
}
