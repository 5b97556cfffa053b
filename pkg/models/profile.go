package models

import (
	"errors"

	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/allocation"
	"github.com/envelope-zero/paycheck/pkg/schedule"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayProfile describes how and when the user is paid.
//
// There is at most one pay profile. Use SaveProfile to create or update it.
type PayProfile struct {
	DefaultModel
	NetPay     decimal.Decimal    `gorm:"type:DECIMAL(20,8)"`
	Frequency  schedule.Frequency `gorm:"type:varchar(16)"`
	LastPayday types.Date
}

func (p *PayProfile) BeforeSave(_ *gorm.DB) error {
	if !p.NetPay.IsPositive() {
		return ErrNetPayNotPositive
	}

	if !p.Frequency.Valid() {
		return ErrFrequencyInvalid
	}

	if p.LastPayday.IsZero() {
		return ErrLastPaydayMissing
	}

	return nil
}

// Allocation returns the profile as used for plan computation.
func (p PayProfile) Allocation() *allocation.Profile {
	return &allocation.Profile{
		NetPay:     p.NetPay,
		Frequency:  p.Frequency,
		LastPayday: p.LastPayday,
	}
}

// CurrentProfile returns the pay profile.
//
// If no profile exists, the error wraps ErrResourceNotFound.
func CurrentProfile(db *gorm.DB) (PayProfile, error) {
	var profile PayProfile
	err := db.Order("id ASC").First(&profile).Error
	if err != nil {
		return PayProfile{}, err
	}

	return profile, nil
}

// SaveProfile creates the pay profile or updates the existing one.
func SaveProfile(db *gorm.DB, profile PayProfile) (PayProfile, error) {
	err := transaction(db, func(tx *gorm.DB) error {
		existing, err := CurrentProfile(tx)
		if err != nil && !errors.Is(err, ErrResourceNotFound) {
			return err
		}

		profile.DefaultModel = existing.DefaultModel
		return tx.Save(&profile).Error
	})
	if err != nil {
		return PayProfile{}, err
	}

	return profile, nil
}

// DeleteProfile removes the pay profile.
//
// If no profile exists, the error wraps ErrResourceNotFound.
func DeleteProfile(db *gorm.DB) error {
	profile, err := CurrentProfile(db)
	if err != nil {
		return err
	}

	return db.Delete(&profile).Error
}
