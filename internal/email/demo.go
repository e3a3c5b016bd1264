package email

import (
	"fmt"
	"io"

	"github.com/hunkymanie/shoply/internal/websocket"
)

// Demo-UI contract: these markers and the surrounding message layout are
// parsed by the demo helper. Do not reword them.
const (
	headerVerification = "EMAIL VERIFICATION LINK (Click to verify):"
	headerResend       = "NEW VERIFICATION LINK (Click to verify):"
	headerReset        = "PASSWORD RESET LINK (Click to reset):"
)

// DemoMailer writes the would-be email as a human-readable message to out
// (stdout in the demo) and broadcasts it on the link channel.
type DemoMailer struct {
	out io.Writer
	hub *websocket.Hub
}

// NewDemoMailer creates a demo mailer. hub may be nil when no link channel is
// wanted.
func NewDemoMailer(out io.Writer, hub *websocket.Hub) *DemoMailer {
	return &DemoMailer{out: out, hub: hub}
}

func (m *DemoMailer) SendLink(purpose Purpose, toEmail, link string) error {
	var header string
	switch purpose {
	case PurposeVerification:
		header = headerVerification
	case PurposeResend:
		header = headerResend
	case PurposeReset:
		header = headerReset
	default:
		return fmt.Errorf("unknown link purpose %q", purpose)
	}

	text := fmt.Sprintf("\n🔗 %s\n%s\n\n📧 This would normally be sent to: %s\n", header, link, toEmail)

	if _, err := fmt.Fprint(m.out, text); err != nil {
		return fmt.Errorf("write demo link: %w", err)
	}
	if m.hub != nil {
		m.hub.Broadcast(websocket.NewLinkMessage(string(purpose), toEmail, link, text))
	}
	return nil
}
