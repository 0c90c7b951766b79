// Package entity defines the domain entities for the survey feature.
package entity

import (
	"time"

	authentity "survey_backend/internal/feature/auth/domain/entity"
)

// Survey represents one survey an admin created.
// Questions are loaded in creation order (Order asc, then ID asc).
type Survey struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// CreatedBy is the admin user who owns this survey.
	CreatedBy uint             `gorm:"not null;index" json:"created_by"`
	Creator   *authentity.User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	// IsActive controls whether respondents can still submit answers.
	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	Questions []Question `gorm:"foreignKey:SurveyID" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Question is a single agree/disagree statement inside a survey.
type Question struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SurveyID     uint   `gorm:"not null;index" json:"survey_id"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`

	// Order is the display position inside the survey, assigned by the client.
	Order int `gorm:"column:order;not null;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
}

// Response is one respondent's submission envelope for a survey.
// Individual boolean answers hang off it per question.
type Response struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SurveyID    uint      `gorm:"not null;index" json:"survey_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	SubmittedAt time.Time `json:"submitted_at"`

	Answers []Answer `gorm:"foreignKey:ResponseID" json:"answers,omitempty"`
}

// Answer is a single boolean (setuju / tidak setuju) answer to one question.
type Answer struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ResponseID uint `gorm:"not null;index" json:"response_id"`
	QuestionID uint `gorm:"not null;index" json:"question_id"`

	// Answer is true for "setuju" (agree), false for "tidak setuju".
	Answer bool `gorm:"not null" json:"answer"`

	CreatedAt time.Time `json:"created_at"`
}
