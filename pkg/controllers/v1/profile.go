package v1

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/httputil"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the routes for the pay profile with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PUT("", SetProfile)
	r.DELETE("", DeleteProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get pay profile
// @Description	Returns the pay profile
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		404	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	profile, err := models.CurrentProfile(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProfile(c, profile, types.Today())
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// @Summary		Set pay profile
// @Description	Creates the pay profile or replaces the existing one. There is at most one pay profile.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Success		201		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Pay profile"
// @Router			/v1/profile [put]
func SetProfile(c *gin.Context) {
	var data ProfileEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	profile, err := data.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	// Creating the profile returns 201, replacing it 200
	code := http.StatusOK
	_, err = models.CurrentProfile(models.DB)
	if errors.Is(err, models.ErrResourceNotFound) {
		code = http.StatusCreated
	} else if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	profile, err = models.SaveProfile(models.DB, profile)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProfile(c, profile, types.Today())
	c.JSON(code, ProfileResponse{Data: &apiResource})
}

// @Summary		Delete pay profile
// @Description	Deletes the pay profile
// @Tags			Profile
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/profile [delete]
func DeleteProfile(c *gin.Context) {
	err := models.DeleteProfile(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
