package onebot

import (
	"strings"

	"github.com/google/uuid"
)

// commandPrefix marks the messages this bot reacts to; everything else on
// the socket is someone else's conversation.
const commandPrefix = "/panel"

// Event is the subset of a OneBot v11 event the bot cares about.
type Event struct {
	Time        int64  `json:"time"`
	SelfID      int64  `json:"self_id"`
	PostType    string `json:"post_type"`
	MessageType string `json:"message_type"`
	UserID      int64  `json:"user_id"`
	GroupID     int64  `json:"group_id"`
	RawMessage  string `json:"raw_message"`
}

// CommandText returns the command carried by a message event, or false for
// heartbeats, notices and chatter without the prefix.
func (e *Event) CommandText() (string, bool) {
	if e.PostType != "message" {
		return "", false
	}
	text := strings.TrimSpace(e.RawMessage)
	if text != commandPrefix && !strings.HasPrefix(text, commandPrefix+" ") {
		return "", false
	}
	return text, true
}

type sendMsgParams struct {
	MessageType string `json:"message_type"`
	UserID      int64  `json:"user_id,omitempty"`
	GroupID     int64  `json:"group_id,omitempty"`
	Message     string `json:"message"`
}

type action struct {
	Action string        `json:"action"`
	Params sendMsgParams `json:"params"`
	Echo   string        `json:"echo"`
}

// buildReply addresses the answer back to wherever the command came from.
func buildReply(ev *Event, text string) action {
	params := sendMsgParams{
		MessageType: ev.MessageType,
		Message:     text,
	}
	if ev.MessageType == "group" {
		params.GroupID = ev.GroupID
	} else {
		params.UserID = ev.UserID
	}
	return action{
		Action: "send_msg",
		Params: params,
		Echo:   uuid.New().String(),
	}
}
