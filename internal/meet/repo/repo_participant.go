package repo

import (
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/database"
)

/**
 * @time: 2024/11/4 21:28
 * @file: repo_participant.go
 * @description: participant repository
 */

type IParticipantRepository interface {
	GetParticipant(participantId, userId string) (*model.Participant, error)
	GetByMeetingAndUser(meetingId, userId string) (*model.Participant, error)
	ListParticipantsForUser(userId string) ([]model.Participant, error)
	ListParticipantsByMeeting(meetingId string) ([]model.Participant, error)
	AddParticipant(participant *model.Participant) error
	UpdateParticipant(participantId, userId string, fields map[string]any) (int64, error)
	DeleteParticipant(participantId string) error
}

type ParticipantRepo struct {
	db               database.IDatabase
	participantModel *model.Participant
}

func NewParticipantRepo(db database.IDatabase) IParticipantRepository {
	return &ParticipantRepo{
		db:               db,
		participantModel: &model.Participant{},
	}
}

func (pr *ParticipantRepo) GetParticipant(participantId, userId string) (*model.Participant, error) {
	var p model.Participant
	err := pr.db.Database().Table(pr.participantModel.TableName()).
		Where("participant_id = ? AND user_id = ?", participantId, userId).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (pr *ParticipantRepo) GetByMeetingAndUser(meetingId, userId string) (*model.Participant, error) {
	var p model.Participant
	err := pr.db.Database().Table(pr.participantModel.TableName()).
		Where("meeting_id = ? AND user_id = ?", meetingId, userId).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (pr *ParticipantRepo) ListParticipantsForUser(userId string) ([]model.Participant, error) {
	var participants []model.Participant
	err := pr.db.Database().Table(pr.participantModel.TableName()).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&participants).Error
	return participants, err
}

func (pr *ParticipantRepo) ListParticipantsByMeeting(meetingId string) ([]model.Participant, error) {
	var participants []model.Participant
	err := pr.db.Database().Table(pr.participantModel.TableName()).
		Where("meeting_id = ?", meetingId).
		Find(&participants).Error
	return participants, err
}

func (pr *ParticipantRepo) AddParticipant(participant *model.Participant) error {
	return pr.db.Database().Create(participant).Error
}

// UpdateParticipant applies fields scoped to the participant id AND its user.
func (pr *ParticipantRepo) UpdateParticipant(participantId, userId string, fields map[string]any) (int64, error) {
	tx := pr.db.Database().Table(pr.participantModel.TableName()).
		Where("participant_id = ? AND user_id = ?", participantId, userId).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (pr *ParticipantRepo) DeleteParticipant(participantId string) error {
	return pr.db.Database().Where("participant_id = ?", participantId).
		Delete(&model.Participant{}).Error
}
