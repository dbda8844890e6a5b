package models

import (
	"itm/internal/shared/constants"
)

type ClientModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:32"`
	Address   string `gorm:"size:500"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ClientModel) TableName() string {
	return constants.TableClients
}
