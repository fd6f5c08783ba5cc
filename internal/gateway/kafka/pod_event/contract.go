//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pod_event_test
package pod_event

import (
	"github.com/IBM/sarama"
)

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}
