package model

import "time"

// RoleModel mirrors the 'roles' catalog table.
type RoleModel struct {
	ID        string `gorm:"column:role_id;type:varchar(32);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// AccountRoleModel mirrors the 'account_roles' join table. (AccountID, RoleID) is the primary key.
type AccountRoleModel struct {
	AccountID string `gorm:"type:varchar(32);primaryKey"`
	RoleID    string `gorm:"type:varchar(32);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountRoleModel) TableName() string {
	return "account_roles"
}
