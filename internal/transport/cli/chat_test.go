package cli

import (
	"strings"
	"testing"

	"github.com/autonara/smartmatch/internal/core"
)

func TestRenderTurn(t *testing.T) {
	user := renderTurn(core.NewUserMessage("i commute daily"))
	if !strings.Contains(user, "You:") || !strings.Contains(user, "i commute daily") {
		t.Errorf("unexpected user turn: %q", user)
	}

	bot := renderTurn(core.NewAssistantMessage("hello"))
	if !strings.Contains(bot, "Smart Match:") || !strings.Contains(bot, "hello") {
		t.Errorf("unexpected assistant turn: %q", bot)
	}
}

func TestTranscriptContains(t *testing.T) {
	messages := []core.ChatMessage{
		core.NewUserMessage("hi"),
		core.NewAssistantMessage("welcome"),
	}

	if !transcriptContains(messages, "welcome") {
		t.Error("expected assistant content to be found")
	}
	// user content does not count even when identical
	if transcriptContains(messages, "hi") {
		t.Error("user content should not match")
	}
	if transcriptContains(messages, "missing") {
		t.Error("unexpected match")
	}
}

func TestTitleBarWithoutHealthSource(t *testing.T) {
	if !strings.Contains(titleBar(nil), "offline") {
		t.Error("nil health source should render as offline")
	}
}
