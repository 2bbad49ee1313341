package score

// Mode selects the alignment shape: full-length global alignment, best
// local alignment, or FOGSAA's branch-and-bound global alignment.
type Mode int

const (
	Global Mode = iota
	Local
	FOGSAA
)

func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	case FOGSAA:
		return "fogsaa"
	default:
		return "unknown"
	}
}

// ParseMode maps a user-facing mode string to a Mode, returning a
// ValidationError for anything else.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "global":
		return Global, nil
	case "local":
		return Local, nil
	case "fogsaa":
		return FOGSAA, nil
	default:
		return 0, &ValidationError{Reason: "invalid mode " + s}
	}
}

// Algorithm identifies which of the four DP engines fills the trace matrix.
type Algorithm int

const (
	NWSW Algorithm = iota
	Gotoh
	WSB
	FogsaaAlgo
)

func (a Algorithm) String() string {
	switch a {
	case NWSW:
		return "nw-sw"
	case Gotoh:
		return "gotoh"
	case WSB:
		return "wsb"
	case FogsaaAlgo:
		return "fogsaa"
	default:
		return "unknown"
	}
}
