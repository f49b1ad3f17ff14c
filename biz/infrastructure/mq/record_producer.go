package mq

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/health-triage/biz/application/dto"
	"github.com/xh-polaris/health-triage/biz/infrastructure/config"
	"github.com/xh-polaris/health-triage/biz/infrastructure/util"
	"golang.org/x/net/context"
)

// conn 采用单例模式, 复用连接
var (
	conn *amqp.Connection
	once sync.Once
	url  string
)

// getConn 获取连接单例
func getConn() *amqp.Connection {
	once.Do(func() {
		conf := config.GetConfig()
		url = conf.RabbitMQ.Url
		c, err := amqp.Dial(url)
		if err != nil {
			util.FailOnError("rabbit mq connect failed", err)
		}
		conn = c
		// 自动重连监听
		go monitor()
	})
	return conn
}

// monitor 监听健康状态并重连
func monitor() {
	for {
		reason := <-conn.NotifyClose(make(chan *amqp.Error))
		log.Info("RabbitMQ connection closed , reason: ", reason)

		retries := 0
		for {
			time.Sleep(time.Duration(math.Pow(2, float64(retries))) * time.Second)

			newConn, err := amqp.Dial(url)
			if err == nil {
				conn = newConn
				log.Info("Reconnect to RabbitMQ")
				break
			}
			retries++
			if retries > 5 {
				util.FailOnError("超过最大重连次数5", fmt.Errorf("RabbitMQ 断开连接且重连失败"))
				return
			}
		}
	}
}

var (
	producer     *RecordProducer
	producerOnce sync.Once
)

// RecordProducer 调用记录生产者
type RecordProducer struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// GetRecordProducer 获取调用记录生产者
func GetRecordProducer() *RecordProducer {
	producerOnce.Do(func() {
		c := getConn()
		ch, err := c.Channel()
		if err != nil {
			util.FailOnError("create channel failed", err)
		}
		producer = &RecordProducer{
			conn:    c,
			channel: ch,
		}
	})
	return producer
}

// Produce 发送调用记录消息
func (p *RecordProducer) Produce(ctx context.Context, event *dto.RecordEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// 发布持久化消息
	err = p.channel.PublishWithContext(ctx, "triage_record", "triage.record.created",
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	return err
}
