// internal/models/violation.go
package models

import "time"

// Violation is a suspected infringement reported by the detection system.
type Violation struct {
	Seq             uint64          `json:"-" gorm:"primaryKey;autoIncrement"`
	ID              string          `json:"id" gorm:"size:64;uniqueIndex;not null"`
	ViolationID     string          `json:"violationId" gorm:"size:78;index"`
	DippChainID     string          `json:"dippChainId" gorm:"size:66;index"`
	IPTitle         string          `json:"ipTitle" gorm:"size:255"`
	DetectedURL     string          `json:"detectedUrl" gorm:"size:2048"`
	SimilarityScore int             `json:"similarityScore" gorm:"not null;check:similarity_score BETWEEN 0 AND 100"`
	EvidenceHash    string          `json:"evidenceHash" gorm:"size:128"`
	ReportedAt      time.Time       `json:"reportedAt" gorm:"index"`
	Status          ViolationStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	Reporter        string          `json:"reporter" gorm:"size:255"`
	ChallengeNote   string          `json:"challengeNote,omitempty" gorm:"type:text"`
	Resolution      string          `json:"resolution,omitempty" gorm:"type:text"`

	Severity Severity `json:"severity" gorm:"-"`
}

func (Violation) TableName() string {
	return "violations"
}

func (v Violation) RecordID() string {
	return v.ID
}

func SeverityFor(score int) Severity {
	switch {
	case score >= 90:
		return SeverityHigh
	case score >= 75:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func (v Violation) WithSeverity() Violation {
	v.Severity = SeverityFor(v.SimilarityScore)
	return v
}
