package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Email         string          `gorm:"uniqueIndex;size:255" json:"email"`
	Username      string          `gorm:"uniqueIndex;size:50" json:"username"`
	FullName      string          `gorm:"size:100" json:"full_name"`
	PhoneNumber   string          `gorm:"size:20" json:"phone_number"`
	PasswordHash  string          `gorm:"size:255" json:"-"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	IsVerified    bool            `gorm:"default:false" json:"is_verified"`
	WalletBalance decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"wallet_balance"`

	Orders             []Order             `gorm:"foreignKey:UserID" json:"-"`
	Transactions       []Transaction       `gorm:"foreignKey:UserID" json:"-"`
	WalletTransactions []WalletTransaction `gorm:"foreignKey:UserID" json:"-"`
}
