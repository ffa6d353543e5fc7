package data

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"monbattle-ebiten/core"

	"github.com/rs/zerolog"
)

var placeholderRegex = regexp.MustCompile(`{(\w+)}`)

// MessageManager handles loading and retrieving formatted messages.
type MessageManager struct {
	messages map[string]string
	log      zerolog.Logger
}

// NewMessageManager は、JSON形式のメッセージデータを受け取り、新しいMessageManagerを初期化して返します。
// ファイルパスではなくバイトデータを受け取ることで、このマネージャーはファイルI/Oやリソース管理から独立します。
func NewMessageManager(jsonData []byte) (*MessageManager, error) {
	if jsonData == nil {
		return nil, fmt.Errorf("メッセージデータがnilです")
	}

	var templates []core.MessageTemplate
	if err := json.Unmarshal(jsonData, &templates); err != nil {
		return nil, fmt.Errorf("メッセージデータのJSONパースに失敗しました: %w", err)
	}

	messages := make(map[string]string, len(templates))
	for _, t := range templates {
		if _, dup := messages[t.ID]; dup {
			return nil, fmt.Errorf("%w: message %q", ErrDuplicateID, t.ID)
		}
		messages[t.ID] = t.Text
	}

	return &MessageManager{messages: messages, log: zerolog.Nop()}, nil
}

// SetLogger は未登録のIDやパラメータ不足を報告するロガーを設定します。
func (mm *MessageManager) SetLogger(logger zerolog.Logger) {
	mm.log = logger
}

// Len は読み込まれたテンプレートの数です。
func (mm *MessageManager) Len() int { return len(mm.messages) }

// GetRawMessage retrieves a raw message template by its ID.
func (mm *MessageManager) GetRawMessage(id string) (string, bool) {
	msg, found := mm.messages[id]
	return msg, found
}

// FormatMessage formats a message template, replacing each {key} with params[key].
// Unknown IDs are returned as-is so they are noticeable on screen.
func (mm *MessageManager) FormatMessage(id string, params map[string]any) string {
	template, ok := mm.messages[id]
	if !ok {
		mm.log.Warn().Str("id", id).Msg("メッセージIDが見つかりません")
		return id
	}

	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.Trim(match, "{}")
		if val, pOk := params[key]; pOk {
			return fmt.Sprintf("%v", val)
		}
		mm.log.Warn().Str("id", id).Str("placeholder", match).Msg("プレースホルダーに対応するパラメータがありません")
		return match
	})
}
