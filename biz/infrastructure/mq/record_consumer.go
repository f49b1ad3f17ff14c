package mq

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/gopkg/util/gopool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/health-triage/biz/application/dto"
	"github.com/xh-polaris/health-triage/biz/infrastructure/mapper/record"
	"golang.org/x/net/context"
)

// RecordConsumer 消费调用记录消息并落库
type RecordConsumer struct {
	conn   *amqp.Connection
	finish chan struct{}
}

// NewRecordConsumer 创建一个消费者
func NewRecordConsumer() *RecordConsumer {
	return &RecordConsumer{
		conn:   getConn(),
		finish: make(chan struct{}),
	}
}

// Consume 启动消费者
func Consume() {
	consumer := NewRecordConsumer()
	consumer.Start()
}

// Start 开始消费
func (c *RecordConsumer) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 启动消息处理
	gopool.CtxGo(ctx, func() {
		c.consume(ctx)
	})
	// 处理系统信号
	gopool.CtxGo(ctx, func() {
		c.osSignalHandler(ctx)
		c.finish <- struct{}{}
	})

	<-c.finish
}

// 消费信息
func (c *RecordConsumer) consume(ctx context.Context) {
	ch, err := c.conn.Channel()
	if err != nil {
		log.Error("get channel error:", err)
		return
	}
	defer func() { _ = ch.Close() }()
	err = ch.Qos(1, 0, false)
	if err != nil {
		log.Error("set qos error:", err)
		return
	}
	msgs, err := ch.Consume("triage_record", "record_consumer", false, false, false, false, nil)
	if err != nil {
		log.Error("get consume error:", err)
		return
	}

	for msg := range msgs {
		if err = c.process(ctx, msg); err != nil {
			// 失败时拒绝并重试
			log.Error("处理失败，消息重新入队:", err)
			if err = msg.Nack(false, true); err != nil {
				log.Error("nack失败 ", err)
			}
		} else if err = msg.Ack(false); err != nil {
			log.Error("ack失败 ", err)
		}
	}
}

// osSignalHandler 处理os信号
func (c *RecordConsumer) osSignalHandler(ctx context.Context) {
	log.CtxInfo(ctx, "[osSignalHandler] start")
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	osSignal := <-ch
	log.CtxInfo(ctx, "[osSignalHandler] receive signal:[%v]", osSignal)
}

// process 实际消费逻辑
func (c *RecordConsumer) process(ctx context.Context, msg amqp.Delivery) error {
	var event dto.RecordEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return err
	}

	r := &record.Record{
		Operation:   event.Operation,
		SessionId:   event.SessionId,
		ConcernType: event.ConcernType,
		RiskLevel:   event.RiskLevel,
		Summary:     event.Summary,
		CreateTime:  time.Unix(event.Timestamp, 0),
	}

	// 存储调用记录
	return record.GetMongoMapper().Insert(ctx, r)
}
