package repo

import (
	"gorm.io/gorm"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/internal/meet/model"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/database"
)

/**
 * @time: 2024/11/4 21:10
 * @file: repo_meeting.go
 * @description: meeting repository
 */

type IMeetingRepository interface {
	CreateMeetingWithOwner(meeting *model.Meeting, owner *model.Participant) error
	GetMeeting(meetingId string) (*model.Meeting, error)
	ListMeetingsForUser(userId string) ([]model.Meeting, error)
	UpdateMeeting(meetingId, ownerId string, fields map[string]any) (int64, error)
	DeleteMeeting(meetingId string) error
}

type MeetingRepo struct {
	db           database.IDatabase
	meetingModel *model.Meeting
}

func NewMeetingRepo(db database.IDatabase) IMeetingRepository {
	return &MeetingRepo{
		db:           db,
		meetingModel: &model.Meeting{},
	}
}

// CreateMeetingWithOwner inserts the meeting and the creator's participant
// row in one transaction, so a failed auto-join never leaves an orphan
// meeting behind.
func (mr *MeetingRepo) CreateMeetingWithOwner(meeting *model.Meeting, owner *model.Participant) error {
	return mr.db.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meeting).Error; err != nil {
			return err
		}
		return tx.Create(owner).Error
	})
}

func (mr *MeetingRepo) GetMeeting(meetingId string) (*model.Meeting, error) {
	var m model.Meeting
	err := mr.db.Database().Table(mr.meetingModel.TableName()).
		Where("meeting_id = ?", meetingId).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMeetingsForUser returns the meetings the user participates in.
func (mr *MeetingRepo) ListMeetingsForUser(userId string) ([]model.Meeting, error) {
	var meetings []model.Meeting
	err := mr.db.Database().Table(mr.meetingModel.TableName()).
		Joins("INNER JOIN t_participant ON t_participant.meeting_id = t_meeting.meeting_id").
		Where("t_participant.user_id = ?", userId).
		Find(&meetings).Error
	return meetings, err
}

// UpdateMeeting applies fields scoped to the meeting id AND its owner. A
// non-owner caller matches zero rows, which is reported, not errored.
func (mr *MeetingRepo) UpdateMeeting(meetingId, ownerId string, fields map[string]any) (int64, error) {
	tx := mr.db.Database().Table(mr.meetingModel.TableName()).
		Where("meeting_id = ? AND user_id = ?", meetingId, ownerId).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

// DeleteMeeting removes the meeting row. Participant rows cascade via the
// store's foreign key; deleting an absent meeting is a no-op.
func (mr *MeetingRepo) DeleteMeeting(meetingId string) error {
	return mr.db.Database().Where("meeting_id = ?", meetingId).
		Delete(&model.Meeting{}).Error
}
