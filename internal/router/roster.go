package router

import (
	"shiftlist/internal/handler"
	"shiftlist/internal/middleware"

	"github.com/gin-gonic/gin"
)

type RosterRouter struct {
	engineerHandler *handler.EngineerHandler
	scheduleHandler *handler.ScheduleHandler
	exportHandler   *handler.ExportHandler
	rateLimit       *middleware.RateLimit
}

func NewRosterRouter(
	engineerHandler *handler.EngineerHandler,
	scheduleHandler *handler.ScheduleHandler,
	exportHandler *handler.ExportHandler,
	rateLimit *middleware.RateLimit,
) *RosterRouter {
	return &RosterRouter{
		engineerHandler: engineerHandler,
		scheduleHandler: scheduleHandler,
		exportHandler:   exportHandler,
		rateLimit:       rateLimit,
	}
}

func (rr *RosterRouter) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/engineers", rr.engineerHandler.List)
		api.POST("/engineers", rr.engineerHandler.Upsert)
		api.DELETE("/engineers/:name", rr.engineerHandler.Delete)

		api.GET("/schedule", rr.scheduleHandler.Get)
		api.POST("/schedule", rr.scheduleHandler.Save)
		api.GET("/constants", rr.scheduleHandler.Constants)

		api.POST("/generate_excel", rr.rateLimit.Guard(), rr.exportHandler.GenerateExcel)
		api.GET("/download/:filename", rr.exportHandler.Download)
		api.GET("/download_bundle", rr.rateLimit.Guard(), rr.exportHandler.DownloadBundle)
	}
}
