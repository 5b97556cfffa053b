package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/httputil"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/envelope-zero/paycheck/pkg/schedule"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

func RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoals)
		r.GET("", GetGoals)
		r.POST("", CreateGoals)
	}
	{
		r.OPTIONS("/order", OptionsGoalOrder)
		r.PUT("/order", ReorderGoals)
	}
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)
	}
	{
		r.OPTIONS("/:id/paydays", OptionsGoalPaydays)
		r.GET("/:id/paydays", GetGoalPaydays)
	}
}

// goalFromURI returns the goal identified by the id path parameter.
func goalFromURI(c *gin.Context) (models.Goal, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Goal{}, err
	}

	id, err := httputil.IDFromString(uri.ID)
	if err != nil {
		return models.Goal{}, err
	}

	var goal models.Goal
	err = models.DB.First(&goal, id).Error
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals/order [options]
func OptionsGoalOrder(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	_, err := goalFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/paydays [options]
func OptionsGoalPaydays(c *gin.Context) {
	_, err := goalFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create goals
// @Description	Creates new goals. Goals without a priority are appended to the end of the list.
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalCreateResponse
// @Failure		400		{object}	GoalCreateResponse
// @Failure		500		{object}	GoalCreateResponse
// @Param			goals	body		[]GoalEditable	true	"Goals"
// @Router			/v1/goals [post]
func CreateGoals(c *gin.Context) {
	var goals []GoalEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &goals)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := GoalCreateResponse{}

	for _, create := range goals {
		goal := create.model()

		if goal.Priority == 0 {
			goal.Priority, err = models.NextGoalPriority(models.DB)
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
		}

		err = models.DB.Create(&goal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newGoal(c, goal)
		r.Data = append(r.Data, GoalResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get goals
// @Description	Returns a list of goals ordered by priority and target date
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		400	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
// @Param			name		query	string	false	"Filter by name. Supports * as wildcard"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			active		query	bool	false	"Is the goal active?"
// @Param			priority	query	int		false	"Filter by priority"
// @Param			offset		query	uint	false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of goals to return. Defaults to 50."
func GetGoals(c *gin.Context) {
	var filter GoalQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, GoalListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	active, err := httputil.BoolFromString(filter.Active)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	q := models.OrderedGoals(models.DB).
		Where(&models.Goal{Priority: filter.Priority}, queryFields...)

	if active != nil {
		q = q.Where("goals.is_active = ?", *active)
	}

	if filter.Search != "" {
		q = q.Where("goals.name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	var goals []models.Goal
	err = q.Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	// Name filters support wildcards and are matched case insensitive
	if slices.Contains(setFields, "Name") {
		pattern := strings.ToLower(filter.Name)
		goals = slices.DeleteFunc(goals, func(g models.Goal) bool {
			return !glob.Glob(pattern, strings.ToLower(g.Name))
		})
	}

	total := len(goals)

	// Default to 50 goals and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	start := min(int(filter.Offset), total)
	end := total
	if limit >= 0 {
		end = min(start+limit, total)
	}

	// Transform resources to their API representation
	data := make([]Goal, 0, end-start)
	for _, goal := range goals[start:end] {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	goal, err := goalFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Update goal
// @Description	Updates an existing goal. Only values to be updated need to be specified.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	goal, err := goalFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, GoalEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data GoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	// Apply the changes to the stored goal so that the whole
	// resulting goal is validated when saving
	data.apply(&goal, updateFields)

	err = models.DB.Save(&goal).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	goal, err := goalFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Reorder goals
// @Description	Sets the priority of goals to their position in the list of IDs sent. Unknown IDs are ignored, goals not in the list keep their priority.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalOrderResponse
// @Failure		400		{object}	GoalOrderResponse
// @Failure		500		{object}	GoalOrderResponse
// @Param			order	body		[]uint	true	"Goal IDs in their new order"
// @Router			/v1/goals/order [put]
func ReorderGoals(c *gin.Context) {
	var payload any
	err := httputil.BindData(c, &payload)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalOrderResponse{
			Error: &e,
		})
		return
	}

	ids, err := models.ParseOrder(payload)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalOrderResponse{
			Error: &e,
		})
		return
	}

	goals, err := models.ReorderGoals(models.DB, ids)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalOrderResponse{
			Error: &e,
		})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalOrderResponse{Data: data})
}

// @Summary		Get paydays for a goal
// @Description	Returns the paydays between a date and the target date of the goal for both the schedule following the pay profile and the calendar fixed schedule
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	PaydaysResponse
// @Failure		400		{object}	PaydaysResponse
// @Failure		404		{object}	PaydaysResponse
// @Failure		500		{object}	PaydaysResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			from	query		string	false	"First day of the range in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/goals/{id}/paydays [get]
func GetGoalPaydays(c *gin.Context) {
	goal, err := goalFromURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaydaysResponse{
			Error: &e,
		})
		return
	}

	from := types.Today()
	if param := c.Query("from"); param != "" {
		from, err = types.ParseDate(param)
		if err != nil {
			e := errFromInvalid.Error()
			c.JSON(http.StatusBadRequest, PaydaysResponse{
				Error: &e,
			})
			return
		}
	}

	profile, err := models.CurrentProfile(models.DB)
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), PaydaysResponse{
			Error: &e,
		})
		return
	}

	sched := schedule.Select(&profile.LastPayday, profile.Frequency)
	paydays := Paydays{
		Mode: sched.Mode(),
		From: from,
		To:   goal.TargetDate,
	}

	if phase, ok := sched.(schedule.PhaseAnchored); ok {
		comparison := schedule.Compare(phase, from, goal.TargetDate)
		paydays.PhaseAnchored = emptyIfNil(comparison.PhaseAnchored)
		paydays.CalendarFixed = emptyIfNil(comparison.CalendarFixed)
		paydays.Discrepancy = comparison.Discrepancy

		if comparison.Discrepancy {
			log.Debug().
				Uint("goal", goal.ID).
				Int("phaseAnchored", len(comparison.PhaseAnchored)).
				Int("calendarFixed", len(comparison.CalendarFixed)).
				Msg("payday schedules disagree")
		}
	} else {
		paydays.CalendarFixed = emptyIfNil(sched.Paydays(from, goal.TargetDate))
	}

	c.JSON(http.StatusOK, PaydaysResponse{Data: &paydays})
}

func emptyIfNil(dates []types.Date) []types.Date {
	if dates == nil {
		return []types.Date{}
	}
	return dates
}
