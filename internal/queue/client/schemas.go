package client

import (
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

type EventType int

const (
	EpochChangedEventType EventType = 1
	FillRewardsEventType  EventType = 2
)

// EpochChangedEvent mirrors the authenticated epoch-changed hook: the epoch
// manager announces a new epoch and the service promotes the upcoming
// reward accumulator.
type EpochChangedEvent struct {
	EventType EventType   `json:"event_type"` // always 1
	Sender    string      `json:"sender"`
	Epoch     types.Epoch `json:"epoch"`
}

func NewEpochChangedEvent(sender string, epoch types.Epoch) EpochChangedEvent {
	return EpochChangedEvent{
		EventType: EpochChangedEventType,
		Sender:    sender,
		Epoch:     epoch,
	}
}

// FillRewardsEvent carries collected fee coins to be swapped into the
// reward denom and added to the upcoming bucket.
type FillRewardsEvent struct {
	EventType EventType   `json:"event_type"` // always 2
	Coins     types.Coins `json:"coins"`
}

func NewFillRewardsEvent(coins types.Coins) FillRewardsEvent {
	return FillRewardsEvent{
		EventType: FillRewardsEventType,
		Coins:     coins,
	}
}
