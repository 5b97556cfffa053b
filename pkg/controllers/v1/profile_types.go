package v1

import (
	"fmt"

	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/envelope-zero/paycheck/pkg/schedule"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProfileEditable struct {
	NetPay     decimal.Decimal `json:"netPay" example:"1000" minimum:"0.00000001" multipleOf:"0.00000001"` // Net pay per paycheck
	Frequency  string          `json:"frequency" example:"bi-weekly" enums:"weekly,bi-weekly,monthly"`     // How often the paycheck arrives
	LastPayday types.Date      `json:"lastPayday" example:"2024-01-05" swaggertype:"primitive,string"`     // The most recent payday, anchors the pay schedule
}

// model returns the database resource for the API representation of the editable fields
func (editable ProfileEditable) model() (models.PayProfile, error) {
	frequency, err := schedule.ParseFrequency(editable.Frequency)
	if err != nil {
		return models.PayProfile{}, fmt.Errorf("%w: %s", models.ErrFrequencyInvalid, editable.Frequency)
	}

	return models.PayProfile{
		NetPay:     editable.NetPay,
		Frequency:  frequency,
		LastPayday: editable.LastPayday,
	}, nil
}

type ProfileLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/profile"` // The pay profile itself
	Plan string `json:"plan" example:"https://example.com/api/v1/plan"`    // The plan computed with this profile
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	NextPayday types.Date   `json:"nextPayday" example:"2024-01-19" swaggertype:"primitive,string"` // The first payday on or after today
	Links      ProfileLinks `json:"links"`
}

// newProfile returns the API v1 representation of the resource
func newProfile(c *gin.Context, model models.PayProfile, today types.Date) Profile {
	url := c.GetString(string(models.DBContextURL))

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			NetPay:     model.NetPay,
			Frequency:  model.Frequency.String(),
			LastPayday: model.LastPayday,
		},
		NextPayday: schedule.Select(&model.LastPayday, model.Frequency).Next(today),
		Links: ProfileLinks{
			Self: url + "/v1/profile",
			Plan: url + "/v1/plan",
		},
	}
}

type ProfileResponse struct {
	Error *string  `json:"error" example:"there is no pay profile matching your query"` // The error, if any occurred
	Data  *Profile `json:"data"`                                                        // The resource
}
