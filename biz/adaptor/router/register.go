package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/xh-polaris/health-triage/biz/adaptor/controller/record"
	"github.com/xh-polaris/health-triage/biz/adaptor/controller/triage"
)

func Register(r *server.Hertz) {
	root := r.Group("/", _rootMw()...)
	{
		_triage := root.Group("/triage")
		_triage.POST("/concern", triage.AnalyzeConcern)
		_triage.POST("/questions", triage.GenerateQuestions)
		_triage.POST("/report", triage.FinalReport)
		_triage.GET("/record/list", record.ListRecord)
	}
}
