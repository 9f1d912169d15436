// Package model contains the GORM persistence structs mirroring the database tables.
package model

import "time"

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID            string    `gorm:"column:account_id;type:varchar(32);primaryKey"`
	Username      string    `gorm:"type:varchar(255);uniqueIndex:uq_accounts_username;not null"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex:uq_accounts_email;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	DeactivatedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Roles []AccountRoleModel `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
