package rabbitmq

type ExchangeType string

const (
	ExchangeFanout ExchangeType = "fanout"
	ExchangeTopic  ExchangeType = "topic"
	ExchangeDirect ExchangeType = "direct"
)

type PublishOptions struct {
	Exchange     string
	ExchangeType ExchangeType
	RoutingKey   string
	Body         []byte
}
