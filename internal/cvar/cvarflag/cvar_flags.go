package cvarflag

import "fmt"

// Flags classify a configuration variable. The engine refuses or announces
// certain writes depending on which bits are set.
type Flags int32

const (
	Cheat Flags = 1 << iota // only changeable when cheats are enabled
	Notify                  // changes are announced to connected clients
	Replicated              // value is mirrored to clients
	Protected               // value is never shown in status output
	Archive                 // value is written back to the server config
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

func (f Flags) Clear(flag Flags) Flags { return f &^ flag }

func (f Flags) String() string {
	s := ""
	for _, n := range []struct {
		flag Flags
		name string
	}{
		{Cheat, "cheat"},
		{Notify, "notify"},
		{Replicated, "replicated"},
		{Protected, "protected"},
		{Archive, "archive"},
	} {
		if f.Has(n.flag) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	return s
}

// Parse returns the flag named by s, e.g. in a batch definition file.
func Parse(s string) (Flags, error) {
	switch s {
	case "cheat":
		return Cheat, nil
	case "notify":
		return Notify, nil
	case "replicated":
		return Replicated, nil
	case "protected":
		return Protected, nil
	case "archive":
		return Archive, nil
	default:
		return 0, fmt.Errorf("unknown cvar flag %q", s)
	}
}
