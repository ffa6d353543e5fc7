package core

import (
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Clamp は v を [lo, hi] の範囲に収めます。
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DisplayName は識別子 ("leech_seed") を表示用の名前 ("Leech Seed") に変換します。
func DisplayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

// MessageTemplate defines the structure for a single message in the JSON file.
type MessageTemplate struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
