package adaptor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/xh-polaris/health-triage/biz/adaptor/cmd"
	"github.com/xh-polaris/health-triage/biz/infrastructure/consts"
)

func TestPostProcess(t *testing.T) {
	cases := []struct {
		name        string
		resp        any
		err         error
		status      int
		contains    string
		notContains string
	}{
		{
			name:     "成功响应",
			resp:     &cmd.Response{Code: 0, Msg: "ok"},
			status:   200,
			contains: `"msg":"ok"`,
		},
		{
			name:     "校验错误原样返回",
			err:      consts.InvalidRequest("clinicalSummary is required"),
			status:   400,
			contains: "clinicalSummary",
		},
		{
			name:        "上游错误只返回通用信息",
			err:         consts.ErrUpstream.Wrap(errors.New("unexpected status code: 429, response body: rate limited")),
			status:      502,
			contains:    `"error"`,
			notContains: "429",
		},
		{
			name:        "凭证缺失只返回通用信息",
			err:         consts.ErrMissingCredential,
			status:      500,
			contains:    `"error"`,
			notContains: "credential",
		},
		{
			name:     "未知错误兜底500",
			err:      errors.New("boom"),
			status:   500,
			contains: `"error"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := app.NewContext(0)
			PostProcess(context.Background(), c, nil, tc.resp, tc.err)

			if c.Response.StatusCode() != tc.status {
				t.Fatalf("status %d, want %d", c.Response.StatusCode(), tc.status)
			}
			body := string(c.Response.Body())
			if tc.contains != "" && !strings.Contains(body, tc.contains) {
				t.Fatalf("body %q should contain %q", body, tc.contains)
			}
			if tc.notContains != "" && strings.Contains(body, tc.notContains) {
				t.Fatalf("body %q must not leak %q", body, tc.notContains)
			}
		})
	}
}
