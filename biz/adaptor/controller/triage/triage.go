package triage

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/health-triage/biz/adaptor"
	"github.com/xh-polaris/health-triage/provider"
)

// AnalyzeConcern 分析自由文本主诉
// @router /triage/concern [POST]
func AnalyzeConcern(ctx context.Context, c *app.RequestContext) {
	body := c.Request.Body()
	p := provider.Get()
	resp, err := p.TriageService.AnalyzeConcern(ctx, body)
	adaptor.PostProcess(ctx, c, string(body), resp, err)
}

// GenerateQuestions 生成追问
// @router /triage/questions [POST]
func GenerateQuestions(ctx context.Context, c *app.RequestContext) {
	body := c.Request.Body()
	p := provider.Get()
	resp, err := p.TriageService.GenerateQuestions(ctx, body)
	adaptor.PostProcess(ctx, c, string(body), resp, err)
}

// FinalReport 生成最终报告
// @router /triage/report [POST]
func FinalReport(ctx context.Context, c *app.RequestContext) {
	body := c.Request.Body()
	p := provider.Get()
	resp, err := p.TriageService.FinalReport(ctx, body)
	adaptor.PostProcess(ctx, c, string(body), resp, err)
}
