package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateAvatarColours returns a random background/font hex colour pair
// assigned to an account at creation for its avatar.
func GenerateAvatarColours() (bgColour, fontColour string) {
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)
	return fmt.Sprintf("#%06X", r.Intn(0x1000000)), fmt.Sprintf("#%06X", r.Intn(0x1000000))
}
