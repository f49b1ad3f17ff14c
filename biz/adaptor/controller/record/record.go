package record

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/health-triage/biz/adaptor"
	"github.com/xh-polaris/health-triage/biz/adaptor/cmd"
	"github.com/xh-polaris/health-triage/provider"
)

// ListRecord .
// @router /triage/record/list [GET]
func ListRecord(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.ListRecordReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.RecordService.ListRecord(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
