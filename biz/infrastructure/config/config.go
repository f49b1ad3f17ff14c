package config

import (
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
)

var config *Config

type SMTP struct {
	Username string
	Password string
	Host     string
	Port     int
	Alert    string
}

type Config struct {
	service.ServiceConf
	ListenOn string
	State    string
	Mongo    struct {
		URL string
		DB  string
	}
	Cache             cache.CacheConf
	RabbitMQ          RabbitMQ
	SMTP              SMTP
	BaiLianCompletion BaiLianCompletion
}

type RabbitMQ struct {
	Url string
}

// BaiLianCompletion 百炼文本补全应用配置
// Url为空时使用默认的兼容模式端点, 测试时可以指向本地
type BaiLianCompletion struct {
	ApiKey string
	Url    string
}

func NewConfig() (*Config, error) {
	c := new(Config)
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	err := conf.Load(path, c)
	if err != nil {
		return nil, err
	}
	err = c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
