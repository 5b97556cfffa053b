package v1

import (
	"net/http"

	"github.com/envelope-zero/paycheck/pkg/httputil"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Profile string `json:"profile" example:"https://example.com/api/v1/profile"` // URL of the pay profile endpoint
	Goals   string `json:"goals" example:"https://example.com/api/v1/goals"`     // URL of goal collection endpoint
	Plan    string `json:"plan" example:"https://example.com/api/v1/plan"`       // URL of the plan endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Profile: url + "/v1/profile",
			Goals:   url + "/v1/goals",
			Plan:    url + "/v1/plan",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
