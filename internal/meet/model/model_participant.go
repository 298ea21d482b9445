package model

/**
 * @time: 2024/11/4 20:02
 * @file: model_participant.go
 * @description: participant model
 */

type Participant struct {
	BaseModel
	ParticipantId string `gorm:"column:participant_id;uniqueIndex" json:"participantId"`
	MeetingId     string `gorm:"column:meeting_id;uniqueIndex:uk_meeting_user" json:"meetingId"`
	UserId        string `gorm:"column:user_id;uniqueIndex:uk_meeting_user" json:"userId"`
	Status        string `gorm:"column:status" json:"status"`
	JoinedAt      int64  `gorm:"column:joined_at" json:"joinedAt,omitempty"`
}

func (Participant) TableName() string {
	return "t_participant"
}

// ParticipantStatus enum
const (
	ParticipantStatusAccept  = "ACCEPT"
	ParticipantStatusPending = "PENDING"
	ParticipantStatusDecline = "DECLINE"
)

type UpdateParticipantReq struct {
	Status string `json:"status"`
}

type InviteReq struct {
	MeetingId string `json:"meetingId"`
	UserId    string `json:"userId"`
}

type InviteResp struct {
	InvitationLink string `json:"invitationLink"`
}

// InviteRecipient is one addressee of the invitation mail fan-out.
type InviteRecipient struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

type InviteEmailReq struct {
	Title        string            `json:"title"`
	Date         string            `json:"date"`
	MeetingId    string            `json:"meetingId"`
	Participants []InviteRecipient `json:"participants"`
}
