package models_test

import (
	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/envelope-zero/paycheck/pkg/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func validProfile() models.PayProfile {
	return models.PayProfile{
		NetPay:     decimal.NewFromFloat(1000),
		Frequency:  schedule.BiWeekly,
		LastPayday: types.NewDate(2024, 1, 5),
	}
}

func (suite *TestSuiteStandard) TestProfileBeforeSave() {
	tests := []struct {
		name   string
		modify func(*models.PayProfile)
		err    error
	}{
		{"Valid", func(*models.PayProfile) {}, nil},
		{"Zero net pay", func(p *models.PayProfile) { p.NetPay = decimal.Zero }, models.ErrNetPayNotPositive},
		{"Negative net pay", func(p *models.PayProfile) { p.NetPay = decimal.NewFromFloat(-1) }, models.ErrNetPayNotPositive},
		{"No frequency", func(p *models.PayProfile) { p.Frequency = "" }, models.ErrFrequencyInvalid},
		{"Unknown frequency", func(p *models.PayProfile) { p.Frequency = "daily" }, models.ErrFrequencyInvalid},
		{"No last payday", func(p *models.PayProfile) { p.LastPayday = types.Date{} }, models.ErrLastPaydayMissing},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			p := validProfile()
			tt.modify(&p)

			assert.Equal(suite.T(), tt.err, p.BeforeSave(&gorm.DB{}))
		})
	}
}

func (suite *TestSuiteStandard) TestProfileNotFound() {
	_, err := models.CurrentProfile(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no pay profile matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestProfileSingleton() {
	first, err := models.SaveProfile(models.DB, validProfile())
	suite.Require().Nil(err)
	assert.NotZero(suite.T(), first.ID)

	update := validProfile()
	update.NetPay = decimal.NewFromFloat(2500)
	update.Frequency = schedule.Monthly

	second, err := models.SaveProfile(models.DB, update)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), first.ID, second.ID, "the existing profile is updated")

	var count int64
	suite.Require().Nil(models.DB.Model(&models.PayProfile{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)

	current, err := models.CurrentProfile(models.DB)
	suite.Require().Nil(err)
	assert.True(suite.T(), current.NetPay.Equal(decimal.NewFromFloat(2500)))
	assert.Equal(suite.T(), schedule.Monthly, current.Frequency)
	assert.Equal(suite.T(), types.NewDate(2024, 1, 5), current.LastPayday)
}

func (suite *TestSuiteStandard) TestProfileSaveInvalid() {
	p := validProfile()
	p.NetPay = decimal.Zero

	_, err := models.SaveProfile(models.DB, p)
	assert.ErrorIs(suite.T(), err, models.ErrNetPayNotPositive)

	_, err = models.CurrentProfile(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound, "nothing is stored")
}

func (suite *TestSuiteStandard) TestProfileDelete() {
	err := models.DeleteProfile(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = models.SaveProfile(models.DB, validProfile())
	suite.Require().Nil(err)

	suite.Require().Nil(models.DeleteProfile(models.DB))

	_, err = models.CurrentProfile(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestProfileAllocation() {
	p := validProfile().Allocation()

	assert.True(suite.T(), p.NetPay.Equal(decimal.NewFromFloat(1000)))
	assert.Equal(suite.T(), schedule.BiWeekly, p.Frequency)
	assert.Equal(suite.T(), types.NewDate(2024, 1, 5), p.LastPayday)
}
