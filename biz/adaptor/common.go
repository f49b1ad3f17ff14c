package adaptor

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/gopkg/util"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/health-triage/biz/infrastructure/consts"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel/propagation"
)

var _ propagation.TextMapCarrier = &headerProvider{}

type headerProvider struct {
	headers *protocol.ResponseHeader
}

// Get a value from metadata by key
func (m *headerProvider) Get(key string) string {
	return m.headers.Get(key)
}

// Set a value to metadata by k/v
func (m *headerProvider) Set(key, value string) {
	m.headers.Set(key, value)
}

// Keys Iteratively get all keys of metadata
func (m *headerProvider) Keys() []string {
	out := make([]string, 0)

	m.headers.VisitAll(func(key, value []byte) {
		out = append(out, string(key))
	})

	return out
}

// PostProcess 统一的响应与错误处理
// 校验错误信息原样返回, 其余错误只返回通用信息, 完整细节进服务端日志
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] request=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)
	b3.New().Inject(ctx, &headerProvider{headers: &c.Response.Header})

	switch {
	case err == nil:
		c.JSON(hertz.StatusOK, resp)
	default:
		var errno *consts.Errno
		if errors.As(err, &errno) {
			log.CtxError(ctx, "[%s] pipeline error: %s", c.Path(), errno.Error())
			c.JSON(errno.HTTPStatus(), utils.H{"error": errno.Public()})
		} else {
			log.CtxError(ctx, "internal error, err=%s", err.Error())
			c.JSON(hertz.StatusInternalServerError, utils.H{"error": consts.ErrInternal.Public()})
		}
	}
}
