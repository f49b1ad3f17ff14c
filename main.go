package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/health-triage/biz/adaptor/router"
	"github.com/xh-polaris/health-triage/biz/infrastructure/config"
	"github.com/xh-polaris/health-triage/biz/infrastructure/mq"
	"github.com/xh-polaris/health-triage/provider"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	// 启动调用记录消费者
	go mq.Consume()

	tracer, cfg := hertztracing.NewServerTracer()
	h := server.Default(tracer, server.WithHostPorts(c.ListenOn))
	h.Use(hertztracing.ServerMiddleware(cfg))

	router.Register(h)
	log.Info("health-triage listen on %s", c.ListenOn)
	h.Spin()
}
