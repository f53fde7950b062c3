package model

import "time"

type AwardStatus string

const (
	StatusPending  AwardStatus = "pending"
	StatusApproved AwardStatus = "approved"
	StatusRejected AwardStatus = "rejected"
)

func (s AwardStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// StudentAchievement is the award record joining a student to a catalog
// achievement. At most one record may exist per (student, achievement)
// pair; the composite unique index backs that up under concurrency.
type StudentAchievement struct {
	ID            int64       `gorm:"primaryKey" json:"id"`
	UUID          string      `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	StudentID     int64       `gorm:"not null;uniqueIndex:idx_student_achievement" json:"student_id"`
	AchievementID int64       `gorm:"not null;uniqueIndex:idx_student_achievement" json:"achievement_id"`
	Status        AwardStatus `gorm:"size:20;default:'pending'" json:"status"`
	Notes         string      `gorm:"type:text" json:"notes,omitempty"`
	EvidenceURL   string      `gorm:"size:255" json:"evidence_url,omitempty"`
	ApprovedByID  *int64      `json:"approved_by_id,omitempty"`
	CreatedAt     time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Student     *User        `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Achievement *Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
	ApprovedBy  *User        `gorm:"foreignKey:ApprovedByID" json:"approved_by,omitempty"`
}

type ClaimRequest struct {
	AchievementID int64  `json:"achievement_id" validate:"required"`
	Notes         string `json:"notes"`
	EvidenceURL   string `json:"evidence_url" validate:"omitempty,url"`
}

type UpdateAwardRequest struct {
	Status      *AwardStatus `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	Notes       *string      `json:"notes,omitempty"`
	EvidenceURL *string      `json:"evidence_url,omitempty" validate:"omitempty,url"`
}

// AwardFilter narrows List queries. Zero values mean "no filter".
type AwardFilter struct {
	StudentID     int64
	AchievementID int64
	Status        AwardStatus
}

type StudentStatsResponse struct {
	TotalAchievements    int `json:"totalAchievements"`
	ApprovedAchievements int `json:"approvedAchievements"`
	PendingAchievements  int `json:"pendingAchievements"`
	RejectedAchievements int `json:"rejectedAchievements"`
	TotalPoints          int `json:"totalPoints"`
}

type AchievementStatsResponse struct {
	TotalStudents    int `json:"totalStudents"`
	ApprovedStudents int `json:"approvedStudents"`
	PendingStudents  int `json:"pendingStudents"`
	RejectedStudents int `json:"rejectedStudents"`
}

// Evidence is an attachment document stored on the Mongo side, keyed by
// the award record's uuid.
type Evidence struct {
	AwardUUID  string    `bson:"awardUuid" json:"award_uuid"`
	FileName   string    `bson:"fileName" json:"file_name"`
	FileURL    string    `bson:"fileUrl" json:"file_url"`
	FileType   string    `bson:"fileType" json:"file_type"`
	UploadedBy int64     `bson:"uploadedBy" json:"uploaded_by"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploaded_at"`
}

type AddEvidenceRequest struct {
	FileName string `json:"file_name" validate:"required"`
	FileURL  string `json:"file_url" validate:"required,url"`
	FileType string `json:"file_type"`
}

type LeaderboardEntry struct {
	StudentID   int64  `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	TotalPoints int    `json:"total_points"`
}

// StudentPoints is one row of the approved-points aggregation used to
// rebuild the leaderboard.
type StudentPoints struct {
	StudentID int64
	Points    int
}
