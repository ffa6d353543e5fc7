package core

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Stat はランク補正の対象となる能力の種類です。
type Stat int

const (
	StatAttack Stat = iota
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed
	StatCrit
	StatAccuracy
	StatEvasion
	StatCount
)

var statNames = [StatCount]string{
	"attack", "defense", "special attack", "special defense",
	"speed", "critical", "accuracy", "evasion",
}

func (s Stat) String() string {
	if s < 0 || s >= StatCount {
		return fmt.Sprintf("stat(%d)", int(s))
	}
	return statNames[s]
}

// Label は文章中に表示する能力名を返します ("special attack" -> "Special Attack")。
func (s Stat) Label() string {
	return cases.Title(language.English).String(s.String())
}

// MarshalText implements encoding.TextMarshaler.
func (s Stat) MarshalText() ([]byte, error) {
	return []byte(strings.ReplaceAll(s.String(), " ", "_")), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stat) UnmarshalText(b []byte) error {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(b))), "_", " ")
	for i, n := range statNames {
		if n == name {
			*s = Stat(i)
			return nil
		}
	}
	return fmt.Errorf("不明な能力名です: %q", string(b))
}

// Stages は各能力のランク補正値です。
type Stages [StatCount]int

// BaseStats は種族値、またはレベルから導出された実数値です。
type BaseStats struct {
	HP        int `yaml:"hp" json:"hp"`
	Attack    int `yaml:"attack" json:"attack"`
	Defense   int `yaml:"defense" json:"defense"`
	SpAttack  int `yaml:"sp_attack" json:"sp_attack"`
	SpDefense int `yaml:"sp_defense" json:"sp_defense"`
	Speed     int `yaml:"speed" json:"speed"`
}

// Get はランク補正の対象となる能力値を返します。命中・回避・急所にはゼロを返します。
func (b BaseStats) Get(s Stat) int {
	switch s {
	case StatAttack:
		return b.Attack
	case StatDefense:
		return b.Defense
	case StatSpAttack:
		return b.SpAttack
	case StatSpDefense:
		return b.SpDefense
	case StatSpeed:
		return b.Speed
	}
	return 0
}
