package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/notification"
)

type notificationApi struct {
	service *notification.Service
}

func RegisterNotificationAPI(g *echo.Group, svc *notification.Service) {
	api := notificationApi{service: svc}

	ng := g.Group("/notifications")
	ng.GET("/logs", api.logQuery)
	ng.GET("/logs/stats", api.logStats)
	ng.POST("/bulk-email", api.bulkSendEmail)

	pg := ng.Group("/preferences")
	pg.GET("", api.preferenceQuery)
	pg.GET("/parent-emails", api.parentEmails)
	pg.GET("/:email", api.preferenceRetrieve)
	pg.PUT("/:email", api.preferenceUpdate)
}

// BulkEmailRequest carries a manually composed email for a set of recipients.
// Preferences are not consulted for these.
type BulkEmailRequest struct {
	Recipients []notification.Recipient `json:"recipients" validate:"required,min=1,dive"`
	Subject    string                   `json:"subject" validate:"required,notblank"`
	Body       string                   `json:"body" validate:"required,notblank"`
}

func (br *BulkEmailRequest) Validate() error {
	br.Subject = core.CleanString(br.Subject)
	for i, rcpt := range br.Recipients {
		br.Recipients[i].Email = core.CleanString(rcpt.Email, true /* lower */)
	}
	return core.Validate.Struct(br)
}

func (api *notificationApi) logQuery(ctx echo.Context) error {
	msgs, err := api.service.Logs()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, msgs)
}

func (api *notificationApi) logStats(ctx echo.Context) error {
	stats, err := api.service.StatsForToday()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *notificationApi) bulkSendEmail(ctx echo.Context) error {
	data := new(BulkEmailRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	msgs, err := api.service.BulkSendEmail(data.Recipients, data.Subject, data.Body)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, msgs)
}

func (api *notificationApi) preferenceQuery(ctx echo.Context) error {
	prefs, err := api.service.QueryAllPreferences()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prefs)
}

func (api *notificationApi) parentEmails(ctx echo.Context) error {
	emails, err := api.service.ParentEmails()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, emails)
}

// preferenceRetrieve resolves the parent's record, creating the all-enabled
// default on first reference.
func (api *notificationApi) preferenceRetrieve(ctx echo.Context) error {
	pref, err := api.service.ResolvePreferences(ctx.Param("email"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pref)
}

func (api *notificationApi) preferenceUpdate(ctx echo.Context) error {
	data := new(notification.UpdatePreference)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	pref, err := api.service.UpdatePreferences(ctx.Param("email"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pref)
}
