// Package mq RabbitMQ消息发布
//
// 目录服务只负责发布事件（topic exchange），消费方由下游系统自行声明队列并绑定：
//
//	catalog.author.created
//	catalog.book.deleted
//	catalog.#            ← 订阅全部目录事件
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Publisher 消息发布者
// Channel不是并发安全的，Publish通过互斥锁串行化
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher 连接RabbitMQ并声明Exchange
func NewPublisher(url, exchange, exchangeType string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,     // Exchange名称
		exchangeType, // Exchange类型
		true,         // Durable（持久化）
		false,        // AutoDelete
		false,        // Internal
		false,        // NoWait
		nil,          // Arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("声明Exchange失败: %w", err)
	}

	log.Info().Str("exchange", exchange).Str("type", exchangeType).Msg("消息发布者已创建")

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish 发布JSON消息
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	msg, err := encode(message, time.Now())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange, // Exchange
		routingKey, // Routing Key
		false,      // Mandatory
		false,      // Immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	log.Debug().Str("routing_key", routingKey).RawJSON("body", msg.Body).Msg("消息已发布")
	return nil
}

// Close 关闭Channel和连接
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func encode(message interface{}, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("消息序列化失败: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // 消息持久化
		Timestamp:    now,
	}, nil
}
