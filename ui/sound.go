package ui

import (
	"math"

	"monbattle-ebiten/core"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// SoundBank は効果音カテゴリごとに生成した短い矩形波を保持します。
type SoundBank struct {
	ctx   *audio.Context
	clips map[core.Sound][]byte
}

// NewSoundBank は各カテゴリの音を生成します。
func NewSoundBank(ctx *audio.Context) *SoundBank {
	return &SoundBank{
		ctx: ctx,
		clips: map[core.Sound][]byte{
			core.SoundHit:              squareWave(0.08, 220),
			core.SoundNotVeryEffective: squareWave(0.12, 140),
			core.SoundSuperEffective:   squareWave(0.06, 440, 660),
			core.SoundLevelUp:          squareWave(0.09, 523, 659, 784, 1047),
		},
	}
}

// Play は s に対応する音を鳴らします。未知のカテゴリは無視します。
func (b *SoundBank) Play(s core.Sound) {
	clip, ok := b.clips[s]
	if !ok || b.ctx == nil {
		return
	}
	b.ctx.NewPlayerFromBytes(clip).Play()
}

// squareWave は周波数ごとに seconds 秒ずつ減衰する矩形波を並べます。
// 出力は16bitステレオのリトルエンディアンです。
func squareWave(seconds float64, freqs ...float64) []byte {
	n := int(seconds * sampleRate)
	buf := make([]byte, 0, n*4*len(freqs))
	for _, f := range freqs {
		for i := 0; i < n; i++ {
			v := 0.2 * (1 - float64(i)/float64(n))
			if math.Sin(2*math.Pi*f*float64(i)/sampleRate) < 0 {
				v = -v
			}
			s := int16(v * math.MaxInt16)
			buf = append(buf, byte(s), byte(s>>8), byte(s), byte(s>>8))
		}
	}
	return buf
}
