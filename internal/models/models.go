package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a market-research study that owns transcripts and
// content analyses
type Project struct {
	gorm.Model
	UUID   string `json:"uuid" gorm:"uniqueIndex"`
	Name   string `json:"name" gorm:"not null"`
	Status string `json:"status" gorm:"default:active"` // active|archived

	Transcripts []Transcript      `json:"transcripts,omitempty" gorm:"foreignKey:ProjectID"`
	Analyses    []ContentAnalysis `json:"analyses,omitempty" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate generates a UUID before creating a new project
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Project model
func (Project) TableName() string {
	return "projects"
}

// All returns every model registered for migration
func All() []any {
	return []any{
		&Project{},
		&Transcript{},
		&ContentAnalysis{},
	}
}
