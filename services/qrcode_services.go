package services

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// VotePageURL is the public voting page of an event
func VotePageURL(clientURL, eventID string) string {
	return fmt.Sprintf("%s/vote/%s", strings.TrimRight(clientURL, "/"), eventID)
}

// GenerateVoteQRCode renders the voting page URL of an event as a PNG
func GenerateVoteQRCode(clientURL, eventID string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(VotePageURL(clientURL, eventID), qrcode.Medium, size)
}
