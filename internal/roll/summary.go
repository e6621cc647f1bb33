package roll

import (
	"fmt"
	"sort"
	"strings"

	"dicebox/internal/dice"
)

// Outcome is the value one die landed on.
type Outcome struct {
	DieType   dice.DieType
	Value     uint32
	EntityRef string
}

// Group collects the values of all dice of one type, sorted ascending.
type Group struct {
	Type   dice.DieType
	Values []uint32
	Sum    int
}

// String renders "D20: 17" for one die and "2xD6: 2 + 4 = 6" for several.
func (g Group) String() string {
	if len(g.Values) == 1 {
		return fmt.Sprintf("%s: %d", g.Type.Name(), g.Values[0])
	}
	parts := make([]string, len(g.Values))
	for i, v := range g.Values {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%dx%s: %s = %d", len(g.Values), g.Type.Name(), strings.Join(parts, " + "), g.Sum)
}

// Summary is the grouped, totalled result of a roll.
type Summary struct {
	Groups       []Group
	DiceTotal    int
	Modifier     int
	ModifierName string
	FinalTotal   int
}

// Summarize groups outcomes by die type in face-count order.
func Summarize(outcomes []Outcome, modifier int, modifierName string) Summary {
	byType := make(map[dice.DieType]*Group)
	for _, o := range outcomes {
		g, ok := byType[o.DieType]
		if !ok {
			g = &Group{Type: o.DieType}
			byType[o.DieType] = g
		}
		g.Values = append(g.Values, o.Value)
		g.Sum += int(o.Value)
	}

	s := Summary{Modifier: modifier, ModifierName: modifierName}
	for _, t := range dice.AllDieTypes() {
		g, ok := byType[t]
		if !ok {
			continue
		}
		sort.Slice(g.Values, func(i, j int) bool { return g.Values[i] < g.Values[j] })
		s.Groups = append(s.Groups, *g)
		s.DiceTotal += g.Sum
	}
	s.FinalTotal = s.DiceTotal + modifier
	return s
}

// String renders the multi-line results text.
func (s Summary) String() string {
	var b strings.Builder
	b.WriteString("Results:\n")
	for _, g := range s.Groups {
		b.WriteString(g.String())
		b.WriteByte('\n')
	}

	if s.Modifier == 0 {
		fmt.Fprintf(&b, "\nTOTAL: %d", s.DiceTotal)
		return b.String()
	}

	sign := ""
	if s.Modifier >= 0 {
		sign = "+"
	}
	name := ""
	if s.ModifierName != "" {
		name = fmt.Sprintf(" (%s)", s.ModifierName)
	}
	fmt.Fprintf(&b, "\nDice Total: %d\nModifier%s: %s%d\n\nFINAL TOTAL: %d", s.DiceTotal, name, sign, s.Modifier, s.FinalTotal)
	return b.String()
}
