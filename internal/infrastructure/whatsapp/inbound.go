package whatsapp

import (
	"strings"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/domain/phone"

	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
)

// messageText returns the plain text of a message, empty for media and
// protocol messages.
func messageText(m *waE2E.Message) string {
	if m == nil {
		return ""
	}
	if t := m.GetConversation(); t != "" {
		return t
	}
	return m.GetExtendedTextMessage().GetText()
}

// inboundFromEvent keeps text messages sent by individual contacts. Own
// messages, groups and broadcasts are dropped. Senders hidden behind a LID
// are mapped to their phone number through SenderAlt or lookupPN.
func inboundFromEvent(v *events.Message, lookupPN func(types.JID) types.JID) (entities.InboundMessage, bool) {
	info := v.Info
	if info.IsFromMe || info.IsGroup || info.Chat.Server == types.GroupServer || info.Chat.Server == types.BroadcastServer {
		return entities.InboundMessage{}, false
	}
	body := strings.TrimSpace(messageText(v.Message))
	if body == "" {
		return entities.InboundMessage{}, false
	}

	sender := info.Sender.ToNonAD()
	pn := sender
	if sender.Server == types.HiddenUserServer {
		pn = types.EmptyJID
		if info.SenderAlt.Server == types.DefaultUserServer {
			pn = info.SenderAlt.ToNonAD()
		} else if lookupPN != nil {
			pn = lookupPN(sender)
		}
	}

	msg := entities.InboundMessage{
		SenderID:   info.Chat.ToNonAD().String(),
		Body:       body,
		ReceivedAt: info.Timestamp,
	}
	if pn.Server == types.DefaultUserServer {
		msg.Phone = phone.Normalize(pn.User)
	}
	return msg, true
}
