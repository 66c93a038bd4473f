package notification

import (
	"context"
	"encoding/json"
	"time"

	"bidloop/internal/pkg/config"
	"bidloop/internal/pkg/errs"
	"bidloop/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

const (
	eventSellerNoWinner = "auction.expired"
	eventSellerSold     = "auction.sold"
	eventBidderWon      = "auction.won"
)

var errPublishNotification = errs.New("failed to publish notification")

// Event is the wire shape published to the notification topic. Downstream
// delivery (mail, push) consumes from there.
type Event struct {
	Type        string    `json:"type"`
	AuctionID   string    `json:"auction_id"`
	Title       string    `json:"title"`
	RecipientID string    `json:"recipient_id"`
	FinalPrice  string    `json:"final_price"`
	Status      string    `json:"status"`
	EndTime     time.Time `json:"end_time"`
}

type KafkaNotifier struct {
	w *kafka.Writer
}

func NewKafkaNotifier(cfg config.KafkaConfig) *KafkaNotifier {
	return &KafkaNotifier{
		w: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  5,
			WriteTimeout: 5 * time.Second,
			ReadTimeout:  5 * time.Second,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (n *KafkaNotifier) Close() error { return n.w.Close() }

func (n *KafkaNotifier) NotifySellerNoWinner(ctx context.Context, closed commands.ClosedAuction) error {
	return n.publish(ctx, eventSellerNoWinner, closed.SellerID.String(), closed)
}

func (n *KafkaNotifier) NotifySellerSold(ctx context.Context, closed commands.ClosedAuction) error {
	return n.publish(ctx, eventSellerSold, closed.SellerID.String(), closed)
}

func (n *KafkaNotifier) NotifyBidderWon(ctx context.Context, closed commands.ClosedAuction) error {
	if closed.WinnerID == nil {
		return nil
	}
	return n.publish(ctx, eventBidderWon, closed.WinnerID.String(), closed)
}

// publish keys messages by auction so events for one auction stay ordered
// within a partition.
func (n *KafkaNotifier) publish(ctx context.Context, eventType, recipientID string, closed commands.ClosedAuction) error {
	event := Event{
		Type:        eventType,
		AuctionID:   closed.AuctionID.String(),
		Title:       closed.Title,
		RecipientID: recipientID,
		FinalPrice:  closed.FinalPrice.String(),
		Status:      string(closed.Status),
		EndTime:     closed.EndTime,
	}

	b, err := json.Marshal(event)
	if err != nil {
		return errs.Mark(err, errPublishNotification)
	}

	if err := n.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AuctionID),
		Value: b,
	}); err != nil {
		return errs.Mark(err, errPublishNotification)
	}
	return nil
}
