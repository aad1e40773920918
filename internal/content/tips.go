// Package content holds the static copy shown alongside places: secret tips
// and category icons.
package content

import (
	"math/rand"
	"time"
)

// Variant selects which tip deck and prefix to use.
type Variant int

const (
	// VariantUI is the web page deck.
	VariantUI Variant = iota
	// VariantAPI is the REST deck, which lacks the last two tips.
	VariantAPI
)

const (
	uiTipPrefix  = "🔐 Secret Tip of the Week: "
	apiTipPrefix = "🔐 Ghumakkad's Secret Tip: "
	apiTipCount  = 8
)

var tipBodies = []string{
	"If you're visiting a temple early morning, carry a small packet of sweets—some locals say it brings you unexpected blessings! 😉🍬",
	"Always carry a small mirror when visiting forts—locals believe it helps ward off negative energy! ✨🪞",
	"Visit lakes during sunrise with a cup of chai—the combination of mist and morning light creates magical moments! ☕🌅",
	"For scary roads, play local folk music in your car—it's said to keep spirits at bay! 🎵👻",
	"Carry a small bell when trekking—the sound helps you stay connected with your group in dense forests! 🔔🌲",
	"Visit gardens on weekdays for the most peaceful experience—weekends can get crowded! 🌸📅",
	"For mysterious places, visit during full moon—the atmosphere becomes even more enchanting! 🌕✨",
	"Always greet the local deity before starting your journey—it's considered auspicious! 🙏🕉️",
	"For adventure spots, visit during monsoon for the most thrilling experience! 🌧️🏔️",
	"For urban spots, visit during festivals for the most vibrant atmosphere! 🎉🏙️",
}

// Tips returns the full prefixed deck for v.
func Tips(v Variant) []string {
	prefix, bodies := uiTipPrefix, tipBodies
	if v == VariantAPI {
		prefix, bodies = apiTipPrefix, tipBodies[:apiTipCount]
	}
	out := make([]string, len(bodies))
	for i, b := range bodies {
		out[i] = prefix + b
	}
	return out
}

// RandomTip picks one tip uniformly. A nil rng uses a fresh time seed.
func RandomTip(rng *rand.Rand, v Variant) string {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	deck := Tips(v)
	return deck[rng.Intn(len(deck))]
}
