// Package healthz reports if the planner can serve requests.
package healthz

import (
	"net/http"

	"github.com/envelope-zero/paycheck/pkg/httputil"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

type Response struct {
	Error string `json:"error" example:"an error occurred on the server during your request"` // The error, if the planner is unhealthy
}

// @Summary		Get health
// @Description	Returns 204 if the database can be reached and an error otherwise
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		503	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if models.DB == nil {
		c.JSON(http.StatusServiceUnavailable, Response{Error: models.ErrGeneral.Error()})
		return
	}

	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}

	if err != nil {
		log.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, Response{Error: models.ErrGeneral.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
