package model

import (
	"encoding/json"
	"fmt"
)

// BlockType identifies a content block variant inside a case study.
type BlockType string

const (
	BlockStatBar                  BlockType = "stat_bar"
	BlockText                     BlockType = "text"
	BlockInsight                  BlockType = "insight"
	BlockTimeline                 BlockType = "timeline"
	BlockMethodGrid               BlockType = "method_grid"
	BlockVisualSlots              BlockType = "visual_slots"
	BlockKeyTakeaways             BlockType = "key_takeaways"
	BlockChallengeApproachOutcome BlockType = "challenge_approach_outcome"
)

// Payload is the type-specific body of a Block.
type Payload interface {
	BlockType() BlockType
}

type Stat struct {
	Value Scalar `json:"value"`
	Label Text   `json:"label"`
}

type StatBar struct {
	Stats []Stat `json:"stats"`
}

type TextBlock struct {
	Title Text `json:"title"`
	Body  Text `json:"body"`
}

type Insight struct {
	Label Text `json:"label"`
	Text  Text `json:"text"`
}

type Phase struct {
	Label Text `json:"label"`
	Title Text `json:"title"`
	Text  Text `json:"text"`
}

type Timeline struct {
	Title  Text    `json:"title"`
	Phases []Phase `json:"phases"`
}

type Method struct {
	Icon  string `json:"icon"`
	Title Text   `json:"title"`
	Text  Text   `json:"text"`
}

type MethodGrid struct {
	Title   Text     `json:"title"`
	Methods []Method `json:"methods"`
}

type Slot struct {
	Caption Text   `json:"caption"`
	Ratio   string `json:"ratio,omitempty"`
	Src     string `json:"src,omitempty"`
}

type VisualSlots struct {
	Slots []Slot `json:"slots"`
}

type KeyTakeaways struct {
	Title Text   `json:"title"`
	Items []Text `json:"items"`
}

type ChallengeApproachOutcome struct {
	Challenge Text `json:"challenge"`
	Approach  Text `json:"approach"`
	Outcome   Text `json:"outcome"`
}

func (StatBar) BlockType() BlockType                  { return BlockStatBar }
func (TextBlock) BlockType() BlockType                { return BlockText }
func (Insight) BlockType() BlockType                  { return BlockInsight }
func (Timeline) BlockType() BlockType                 { return BlockTimeline }
func (MethodGrid) BlockType() BlockType               { return BlockMethodGrid }
func (VisualSlots) BlockType() BlockType              { return BlockVisualSlots }
func (KeyTakeaways) BlockType() BlockType             { return BlockKeyTakeaways }
func (ChallengeApproachOutcome) BlockType() BlockType { return BlockChallengeApproachOutcome }

var payloadFactories = map[BlockType]func() Payload{
	BlockStatBar:                  func() Payload { return &StatBar{} },
	BlockText:                     func() Payload { return &TextBlock{} },
	BlockInsight:                  func() Payload { return &Insight{} },
	BlockTimeline:                 func() Payload { return &Timeline{} },
	BlockMethodGrid:               func() Payload { return &MethodGrid{} },
	BlockVisualSlots:              func() Payload { return &VisualSlots{} },
	BlockKeyTakeaways:             func() Payload { return &KeyTakeaways{} },
	BlockChallengeApproachOutcome: func() Payload { return &ChallengeApproachOutcome{} },
}

// KnownBlockType reports whether t has a registered payload.
func KnownBlockType(t BlockType) bool {
	_, ok := payloadFactories[t]
	return ok
}

// Block is a tagged variant. Payload is nil for unknown types; the raw
// document is kept so that newer content survives a round trip.
type Block struct {
	Type    BlockType
	Payload Payload
	Raw     json.RawMessage
}

// NewBlock wraps a payload in a Block of the matching type.
func NewBlock(p Payload) Block {
	return Block{Type: p.BlockType(), Payload: p}
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var head struct {
		Type BlockType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("block: %w", err)
	}
	b.Type = head.Type
	b.Raw = append(b.Raw[:0], data...)
	b.Payload = nil

	factory, ok := payloadFactories[head.Type]
	if !ok {
		return nil
	}
	p := factory()
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("block %s: %w", head.Type, err)
	}
	b.Payload = p
	return nil
}

func (b Block) MarshalJSON() ([]byte, error) {
	if b.Payload == nil {
		if len(b.Raw) > 0 {
			return b.Raw, nil
		}
		return json.Marshal(map[string]BlockType{"type": b.Type})
	}
	body, err := json.Marshal(b.Payload)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	typ, _ := json.Marshal(b.Type)
	fields["type"] = typ
	return json.Marshal(fields)
}
