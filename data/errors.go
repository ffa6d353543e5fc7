package data

import "errors"

var (
	// ErrUnknownBehavior はテンプレートに未登録の振る舞い識別子が指定されていることを示します。
	ErrUnknownBehavior = errors.New("unknown behavior identifier")
	// ErrUnknownReference は存在しない技・特性・種族を参照していることを示します。
	ErrUnknownReference = errors.New("unknown reference")
	// ErrDuplicateID は同じIDが複数回定義されていることを示します。
	ErrDuplicateID = errors.New("duplicate id")
	// ErrInvalidTemplate はテンプレートの値が範囲外であることを示します。
	ErrInvalidTemplate = errors.New("invalid template")
)
