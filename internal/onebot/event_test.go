package onebot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandText(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		text string
		ok   bool
	}{
		{
			name: "group command",
			raw:  `{"post_type":"message","message_type":"group","group_id":42,"raw_message":"/panel status"}`,
			text: "/panel status",
			ok:   true,
		},
		{
			name: "bare prefix asks for help",
			raw:  `{"post_type":"message","message_type":"private","user_id":7,"raw_message":"/panel"}`,
			text: "/panel",
			ok:   true,
		},
		{
			name: "heartbeat ignored",
			raw:  `{"post_type":"meta_event","meta_event_type":"heartbeat"}`,
		},
		{
			name: "chatter ignored",
			raw:  `{"post_type":"message","message_type":"group","raw_message":"good morning"}`,
		},
		{
			name: "prefix must be its own word",
			raw:  `{"post_type":"message","message_type":"group","raw_message":"/panelx status"}`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var ev Event
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &ev))

			text, ok := ev.CommandText()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.text, text)
		})
	}
}

func TestBuildReplyAddressing(t *testing.T) {
	group := buildReply(&Event{MessageType: "group", GroupID: 42, UserID: 7}, "done")
	assert.Equal(t, "send_msg", group.Action)
	assert.Equal(t, int64(42), group.Params.GroupID)
	assert.Zero(t, group.Params.UserID)
	assert.Equal(t, "done", group.Params.Message)
	assert.NotEmpty(t, group.Echo)

	private := buildReply(&Event{MessageType: "private", UserID: 7}, "done")
	assert.Equal(t, int64(7), private.Params.UserID)
	assert.Zero(t, private.Params.GroupID)
}

func TestReplyWireFormat(t *testing.T) {
	payload, err := json.Marshal(buildReply(&Event{MessageType: "private", UserID: 7}, "ok"))
	require.NoError(t, err)

	s := string(payload)
	assert.Contains(t, s, `"action":"send_msg"`)
	assert.Contains(t, s, `"user_id":7`)
	assert.NotContains(t, s, "group_id", "omitted for private replies")
}
