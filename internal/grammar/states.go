package grammar

import (
	"strconv"

	"github.com/qmuntal/stateless"
)

// State is a scanner state, named after the component being scanned.
type State uint8

const (
	StateScheme State = iota
	StateAuthority
	StateUserInfo
	StateHost
	StatePort
	StatePath
	StateQuery
	StateFragment
	StateDone
)

var stateNames = [...]string{
	StateScheme:    "scheme",
	StateAuthority: "authority",
	StateUserInfo:  "userinfo",
	StateHost:      "host",
	StatePort:      "port",
	StatePath:      "path",
	StateQuery:     "query",
	StateFragment:  "fragment",
	StateDone:      "done",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Trigger moves the scanner to the next component.
// Each trigger is named after the state it leads to.
type Trigger uint8

const (
	ToAuthority Trigger = iota
	ToUserInfo
	ToHost
	ToPort
	ToPath
	ToQuery
	ToFragment
	ToDone
)

var triggerNames = [...]string{
	ToAuthority: "to_authority",
	ToUserInfo:  "to_userinfo",
	ToHost:      "to_host",
	ToPort:      "to_port",
	ToPath:      "to_path",
	ToQuery:     "to_query",
	ToFragment:  "to_fragment",
	ToDone:      "to_done",
}

func (t Trigger) String() string {
	if int(t) < len(triggerNames) {
		return triggerNames[t]
	}
	return "trigger(" + strconv.Itoa(int(t)) + ")"
}

// NewScanMachine returns a state machine in [StateScheme] that permits only
// the transitions of the generic URI syntax:
//
//	scheme -> [authority -> [userinfo] -> host -> [port]] -> path -> [query] -> [fragment] -> done
//
// The authority branch may end right after the host or the port.
// Firing any other trigger returns an error.
func NewScanMachine() *stateless.StateMachine {
	sm := stateless.NewStateMachine(StateScheme)
	sm.Configure(StateScheme).
		Permit(ToAuthority, StateAuthority).
		Permit(ToPath, StatePath)
	sm.Configure(StateAuthority).
		Permit(ToUserInfo, StateUserInfo).
		Permit(ToHost, StateHost)
	sm.Configure(StateUserInfo).
		Permit(ToHost, StateHost)
	sm.Configure(StateHost).
		Permit(ToPort, StatePort).
		Permit(ToPath, StatePath).
		Permit(ToDone, StateDone)
	sm.Configure(StatePort).
		Permit(ToPath, StatePath).
		Permit(ToDone, StateDone)
	sm.Configure(StatePath).
		Permit(ToQuery, StateQuery).
		Permit(ToFragment, StateFragment).
		Permit(ToDone, StateDone)
	sm.Configure(StateQuery).
		Permit(ToFragment, StateFragment).
		Permit(ToDone, StateDone)
	sm.Configure(StateFragment).
		Permit(ToDone, StateDone)
	return sm
}
