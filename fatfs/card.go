package fatfs

import (
	"github.com/rstms/sdfs"
)

// Card simulates the media layer beneath a FileSystem. When a detect
// signal is configured, Init consults the Present hook to decide
// whether a card is in the slot; with sdfs.DetectNone the card is
// assumed present.
type Card struct {
	// Present reports whether media is present; consulted only when
	// a detect signal is configured. Nil means always present.
	Present func() bool
}

// ensure Card implements sdfs.Card
var _ sdfs.Card = (*Card)(nil)

func NewCard() *Card {
	return &Card{}
}

func (c *Card) Init(detect uint32) bool {
	if detect == sdfs.DetectNone {
		return true
	}
	if c.Present == nil {
		return true
	}
	return c.Present()
}
