package provider

import (
	"github.com/google/wire"
	"github.com/xh-polaris/health-triage/biz/application/service"
	"github.com/xh-polaris/health-triage/biz/domain/model/bailian"
	"github.com/xh-polaris/health-triage/biz/domain/triage"
	"github.com/xh-polaris/health-triage/biz/infrastructure/config"
	"github.com/xh-polaris/health-triage/biz/infrastructure/mapper/record"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config        *config.Config
	TriageService service.TriageService
	RecordService service.RecordService
}

func Get() *Provider {
	return provider
}

// NewProvider 组装依赖
func NewProvider() (*Provider, error) {
	c, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	engine := triage.NewEngine(bailian.NewFromConfig(c))
	return &Provider{
		Config:        c,
		TriageService: service.TriageService{Engine: engine},
		RecordService: service.RecordService{RecordMapper: record.NewMongoMapper(c)},
	}, nil
}

var DomainSet = wire.NewSet(
	bailian.NewFromConfig,
	triage.NewEngine,
)

var ApplicationSet = wire.NewSet(
	service.TriageServiceSet,
	service.RecordServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	record.NewMongoMapper,
	DomainSet,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
