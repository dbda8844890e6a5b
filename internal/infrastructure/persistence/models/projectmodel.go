package models

import (
	"itm/internal/shared/constants"
)

// ProjectModel is keyed by name; renames rewrite the key and every
// referencing row in one transaction.
type ProjectModel struct {
	Name          string `gorm:"primaryKey;size:100"`
	AdminUsername string `gorm:"size:64;not null;index"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}

// ProjectMemberModel is one membership row. The composite key makes the
// set free of duplicates.
type ProjectMemberModel struct {
	ProjectName string `gorm:"primaryKey;size:100"`
	Username    string `gorm:"primaryKey;size:64;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ProjectMemberModel) TableName() string {
	return constants.TableProjectMembers
}
