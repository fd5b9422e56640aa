package ticket

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/KirkDiggler/waterstone/internal/models"
)

var invalidNameChars = regexp.MustCompile(`[^a-z0-9-]`)

// ChannelName builds a ticket channel name from free text. Spaces become
// dashes and anything outside [a-z0-9-] is dropped.
func ChannelName(name string) (string, error) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ChannelPrefix)
	name = invalidNameChars.ReplaceAllString(strings.ReplaceAll(name, " ", "-"), "")
	if strings.Trim(name, "-") == "" {
		return "", ErrInvalidName
	}
	return ChannelPrefix + name, nil
}

// BuildTranscript renders a plain-text transcript of a ticket
func BuildTranscript(ticket *models.Ticket, closedBy *models.Member, reason string, closedAt time.Time, messages []*models.TranscriptMessage) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Transcript for #%s\n", ticket.ChannelID)
	if ticket.OwnerID != "" {
		fmt.Fprintf(&buf, "Opened by: %s (%s)\n", ticket.OwnerName, ticket.OwnerID)
	}
	if !ticket.OpenedAt.IsZero() {
		fmt.Fprintf(&buf, "Opened at: %s\n", ticket.OpenedAt.UTC().Format(time.RFC1123))
	}
	if ticket.Reason != "" {
		fmt.Fprintf(&buf, "Reason: %s\n", ticket.Reason)
	}
	if ticket.IsClaimed() {
		fmt.Fprintf(&buf, "Claimed by: %s\n", ticket.ClaimedByName)
	}
	if closedBy != nil {
		fmt.Fprintf(&buf, "Closed by: %s (%s)\n", closedBy.Username, closedBy.ID)
	}
	fmt.Fprintf(&buf, "Closed at: %s\n", closedAt.UTC().Format(time.RFC1123))
	fmt.Fprintf(&buf, "Close reason: %s\n", reason)
	fmt.Fprintf(&buf, "Messages: %d\n\n", len(messages))

	for _, msg := range messages {
		fmt.Fprintf(&buf, "[%s] %s: %s\n", msg.Timestamp.UTC().Format("2006-01-02 15:04:05"), msg.AuthorName, msg.Content)
		if msg.Embeds > 0 {
			fmt.Fprintf(&buf, "    [%d embed(s)]\n", msg.Embeds)
		}
		for _, file := range msg.Files {
			fmt.Fprintf(&buf, "    [attachment: %s]\n", file)
		}
	}

	return buf.Bytes()
}
