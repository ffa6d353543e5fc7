package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
)

// MessageWindow は実況メッセージを表示するUIコンポーネントです。
// 最新の行を強調し、その前の数行を薄い色で残します。
type MessageWindow struct {
	container *widget.Container
	lines     []*widget.Text
	hint      *widget.Text
}

const messageLines = 3

// NewMessageWindow は新しいMessageWindowのインスタンスを作成します。
func NewMessageWindow(f *UIFactory) *MessageWindow {
	m := &MessageWindow{container: f.NewPanel(4)}
	for i := 0; i < messageLines; i++ {
		var c color.Color = colorSubText
		if i == messageLines-1 {
			c = colorText
		}
		t := f.NewLabel("", c)
		m.lines = append(m.lines, t)
		m.container.AddChild(t)
	}
	m.hint = widget.NewText(
		widget.TextOpts.Text("", f.Font, colorSubText),
		widget.TextOpts.Position(widget.TextPositionEnd, widget.TextPositionEnd),
	)
	m.container.AddChild(m.hint)
	return m
}

// Widget はこのコンポーネントのルートウィジェットを返します。
func (m *MessageWindow) Widget() *widget.Container {
	return m.container
}

// SetHistory は直近のメッセージを表示します。最後の要素が最新です。
func (m *MessageWindow) SetHistory(history []string) {
	start := max(len(history)-messageLines, 0)
	shown := history[start:]
	pad := messageLines - len(shown)
	for i, t := range m.lines {
		if i < pad {
			t.Label = ""
			continue
		}
		t.Label = shown[i-pad]
	}
}

// SetHint はウィンドウ右下の案内文を設定します。
func (m *MessageWindow) SetHint(hint string) {
	m.hint.Label = hint
}
