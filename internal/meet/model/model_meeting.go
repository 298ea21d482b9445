package model

/**
 * @time: 2024/11/4 19:46
 * @file: model_meeting.go
 * @description: meeting model
 */

type Meeting struct {
	BaseModel
	MeetingId   string `gorm:"column:meeting_id;uniqueIndex" json:"meetingId"` // short human-shareable code
	Title       string `gorm:"column:title" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	Status      string `gorm:"column:status" json:"status"`
	UserId      string `gorm:"column:user_id" json:"userId"` // owning user
	ScheduledAt int64  `gorm:"column:scheduled_at" json:"scheduledAt,omitempty"`
}

func (Meeting) TableName() string {
	return "t_meeting"
}

// MeetingStatus enum
const (
	MeetingStatusIdle      = "IDLE"
	MeetingStatusLive      = "LIVE"
	MeetingStatusScheduled = "SCHEDULED"
	MeetingStatusEnd       = "END"
)

// ValidMeetingStatus reports whether s is a member of the status enum.
func ValidMeetingStatus(s string) bool {
	switch s {
	case MeetingStatusIdle, MeetingStatusLive, MeetingStatusScheduled, MeetingStatusEnd:
		return true
	}
	return false
}

// ValidStatusTransition enforces the meeting lifecycle:
// IDLE -> LIVE -> END and SCHEDULED -> LIVE -> END, nothing else.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case MeetingStatusIdle, MeetingStatusScheduled:
		return to == MeetingStatusLive
	case MeetingStatusLive:
		return to == MeetingStatusEnd
	}
	return false
}

type CreateMeetingReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ScheduledAt int64  `json:"scheduledDate,omitempty"`
}

// UpdateMeetingReq carries the partial field updates for PUT. Empty fields
// are left untouched.
type UpdateMeetingReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ScheduledAt int64  `json:"scheduledDate,omitempty"`
}
