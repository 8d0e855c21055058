package nav

import "fmt"

// IntentKind is the closed set of discrete navigation intents.
type IntentKind int

const (
	IntentAdvance IntentKind = iota
	IntentRetreat
	IntentJump
)

func (k IntentKind) String() string {
	switch k {
	case IntentAdvance:
		return "advance"
	case IntentRetreat:
		return "retreat"
	case IntentJump:
		return "jump"
	}
	return fmt.Sprintf("IntentKind(%d)", int(k))
}

// Intent is an ephemeral navigation command produced by the aggregator and
// consumed immediately. Target is only meaningful for IntentJump.
type Intent struct {
	Kind   IntentKind
	Target int
}

// Key is a normalized navigation key, already mapped from whatever the host
// input layer received.
type Key int

const (
	KeyAdvance Key = iota // down, page down, space
	KeyRetreat            // up, page up
	KeyHome
	KeyEnd
)
