package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/base-ten/model"
)

// Mode gates which transitions a click may fire
type Mode uint8

const (
	ModeCompose Mode = iota
	ModeDecompose
)

func (m Mode) String() string {
	if m == ModeDecompose {
		return "decompose"
	}
	return "compose"
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == ModeCompose {
		return ModeDecompose
	}
	return ModeCompose
}

// ParseMode accepts "compose" or "decompose", case-insensitive
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compose":
		return ModeCompose, nil
	case "decompose":
		return ModeDecompose, nil
	}
	return ModeCompose, fmt.Errorf("unknown mode %q", s)
}

// RequestKind names the container a click resolved to
type RequestKind uint8

const (
	RequestNone RequestKind = iota
	RequestComposeOnes
	RequestComposeTens
	RequestDecomposeTen
	RequestDecomposeHundred
)

// Request is a transition request from the presentation layer
type Request struct {
	Kind    RequestKind
	Frame   int
	Stick   model.StickID
	Hundred model.HundredID
}

// ComposeOnesFrame targets a full ones-frame
func ComposeOnesFrame(index int) Request {
	return Request{Kind: RequestComposeOnes, Frame: index}
}

// ComposeTensFrame targets a full tens-frame
func ComposeTensFrame(index int) Request {
	return Request{Kind: RequestComposeTens, Frame: index}
}

// DecomposeStick targets a loose ten-stick
func DecomposeStick(id model.StickID) Request {
	return Request{Kind: RequestDecomposeTen, Stick: id}
}

// DecomposeBlock targets a hundred-block
func DecomposeBlock(id model.HundredID) Request {
	return Request{Kind: RequestDecomposeHundred, Hundred: id}
}

// Mode returns the interaction mode the request requires
func (r Request) Mode() Mode {
	if r.Kind == RequestDecomposeTen || r.Kind == RequestDecomposeHundred {
		return ModeDecompose
	}
	return ModeCompose
}

func (r Request) String() string {
	switch r.Kind {
	case RequestComposeOnes:
		return fmt.Sprintf("compose ones-frame %d", r.Frame)
	case RequestComposeTens:
		return fmt.Sprintf("compose tens-frame %d", r.Frame)
	case RequestDecomposeTen:
		return fmt.Sprintf("decompose stick %d", r.Stick)
	case RequestDecomposeHundred:
		return fmt.Sprintf("decompose hundred %d", r.Hundred)
	default:
		return "none"
	}
}

// apply runs the request's mutation against s
func (r Request) apply(s *model.State) (model.Change, bool) {
	switch r.Kind {
	case RequestComposeOnes:
		return s.ComposeOnes(r.Frame)
	case RequestComposeTens:
		return s.ComposeTens(r.Frame)
	case RequestDecomposeTen:
		return s.DecomposeTen(r.Stick)
	case RequestDecomposeHundred:
		return s.DecomposeHundred(r.Hundred)
	}
	return model.Change{}, false
}
