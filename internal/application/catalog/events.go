package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/library/pkg/circuitbreaker"
	"github.com/xiebiao/library/pkg/logger"
	"github.com/xiebiao/library/pkg/metrics"
)

// 目录实体与动作，组成routing key: catalog.<entity>.<action>
const (
	EntityAuthor    = "author"
	EntityPublisher = "publisher"
	EntityBook      = "book"
	EntityInsight   = "insight"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event 目录变更事件
type Event struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         uint      `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RoutingKey 事件路由键
func (e Event) RoutingKey() string {
	return "catalog." + e.Entity + "." + e.Action
}

// EventPublisher 目录事件发布接口
// 发布失败只记录日志，不影响请求结果
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}

// NopEventPublisher 不发布任何事件（mq.enabled=false）
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, Event) {}

// MessageSender 消息发送者（pkg/mq.Publisher实现了该接口）
type MessageSender interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// MQEventPublisher 通过RabbitMQ发布目录事件
// Broker不可用时熔断器打开，后续事件直接丢弃，不拖慢写请求
type MQEventPublisher struct {
	sender  MessageSender
	breaker *circuitbreaker.Breaker
}

// NewMQEventPublisher 创建MQ事件发布者
func NewMQEventPublisher(sender MessageSender) *MQEventPublisher {
	return &MQEventPublisher{
		sender: sender,
		breaker: circuitbreaker.New("catalog-events", circuitbreaker.Config{
			MaxFailures: 5,
			Timeout:     30 * time.Second,
			OnStateChange: func(name string, from, to circuitbreaker.State) {
				log.Warn().Str("breaker", name).Stringer("from", from).Stringer("to", to).Msg("熔断器状态变化")
			},
		}),
	}
}

// Publish 发布事件
func (p *MQEventPublisher) Publish(ctx context.Context, event Event) {
	key := event.RoutingKey()
	err := p.breaker.Execute(func() error {
		return p.sender.Publish(ctx, key, event)
	})
	metrics.RecordEventPublished(key, err)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("routing_key", key).Uint("id", event.ID).Msg("目录事件发布失败")
	}
}

// recorder 写操作成功后记录指标并发布事件
type recorder struct {
	events EventPublisher
}

func (r recorder) record(ctx context.Context, entity, action string, id uint) {
	metrics.RecordCatalogMutation(entity, action)
	r.events.Publish(ctx, Event{
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: time.Now().UTC(),
	})
}
