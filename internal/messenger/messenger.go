package messenger

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/mintbay/nft-marketplace/internal/config"
	"go.uber.org/zap"
)

type MessageService interface {
	SendMessage(item Item, body []byte) error
	PollMessages(item Item, ch chan<- *sqs.Message)
	DeleteMessage(item Item, msg *sqs.Message) error
}

type Messenger struct {
	sqs *sqs.SQS
}

type Item string

var (
	MetadataRefresh Item = "metadata.refresh"
)

// Token is the queue message payload for a metadata refresh.
type Token struct {
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
}

func (i Item) queue() string {
	return fmt.Sprintf("%s.%s", config.Get().Index, i)
}

func NewMessenger() MessageService {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(config.Get().Aws.Region),
		Credentials: credentials.NewStaticCredentials(
			config.Get().Aws.AccessKey,
			config.Get().Aws.SecretKey,
			"",
		),
	}))

	return &Messenger{sqs: sqs.New(sess)}
}

func (m Messenger) SendMessage(item Item, body []byte) error {
	queueUrl, err := m.queueUrl(item)
	if err != nil {
		return err
	}

	_, err = m.sqs.SendMessage(&sqs.SendMessageInput{
		MessageBody: aws.String(string(body)),
		QueueUrl:    queueUrl,
	})
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("[Queue] Failed to send message")
		return err
	}

	zap.L().With(zap.String("queue", item.queue())).Info("[Queue] Published message")

	return nil
}

func (m Messenger) PollMessages(item Item, ch chan<- *sqs.Message) {
	queueUrl, err := m.queueUrl(item)
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("[Queue] Failed to resolve queue")
		return
	}

	for {
		output, err := m.sqs.ReceiveMessage(&sqs.ReceiveMessageInput{
			QueueUrl:            queueUrl,
			MaxNumberOfMessages: aws.Int64(10),
			WaitTimeSeconds:     aws.Int64(15),
		})
		if err != nil {
			zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("[Queue] Failed to receive messages")
			continue
		}

		for _, message := range output.Messages {
			ch <- message
		}
	}
}

func (m Messenger) DeleteMessage(item Item, msg *sqs.Message) error {
	queueUrl, err := m.queueUrl(item)
	if err != nil {
		return err
	}

	_, err = m.sqs.DeleteMessage(&sqs.DeleteMessageInput{
		QueueUrl:      queueUrl,
		ReceiptHandle: msg.ReceiptHandle,
	})

	return err
}

func (m Messenger) queueUrl(item Item) (*string, error) {
	result, err := m.sqs.GetQueueUrl(&sqs.GetQueueUrlInput{
		QueueName: aws.String(item.queue()),
	})
	if err != nil {
		return nil, err
	}

	return result.QueueUrl, nil
}
