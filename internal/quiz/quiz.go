// Package quiz defines the multiple-choice quiz content model and the
// built-in course banks.
package quiz

import "strings"

// Label identifies one of the four answer options.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels returns the four option labels in presentation order.
func Labels() [4]Label {
	return [4]Label{LabelA, LabelB, LabelC, LabelD}
}

// ParseLabel normalizes raw operator input ("b", " C ") into a Label.
// ok is false for anything outside the A–D set.
func ParseLabel(raw string) (Label, bool) {
	switch Label(strings.ToUpper(strings.TrimSpace(raw))) {
	case LabelA:
		return LabelA, true
	case LabelB:
		return LabelB, true
	case LabelC:
		return LabelC, true
	case LabelD:
		return LabelD, true
	default:
		return "", false
	}
}

// Option is one labeled answer choice.
type Option struct {
	Label Label
	Text  string
}

// Question is a single prompt with exactly four options and one correct
// label.
type Question struct {
	Prompt  string
	Options [4]Option
	Correct Label
}

// Quiz is an ordered sequence of questions. ID is the stable key used in the
// statistics ledger; Title is what operators see in menus.
type Quiz struct {
	ID        string
	Title     string
	Questions []Question
}
