package router

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
)

// _rootMw 根路由中间件
func _rootMw() []app.HandlerFunc {
	// 跨域
	return []app.HandlerFunc{cors.Default()}
}
