package scaling

import "strings"

const (
	modePrefix = "server_"
	cfgSuffix  = ".cfg"
)

// ParseMode extracts the mode identifier from the config file path given to
// an exec command. The file name must match "server_" <mode> "." ... "cfg";
// the mode is the text between the prefix and the first dot after it, taken
// as-is (case-sensitive, no trimming). Any directory prefix is ignored.
//
// ok is false when the prefix is missing, there is no dot after the mode, the
// mode is empty, or the extension does not end in "cfg".
func ParseMode(arg string) (mode string, ok bool) {
	name := strings.Trim(arg, ` "`)
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	if !strings.HasPrefix(name, modePrefix) {
		return "", false
	}
	rest := name[len(modePrefix):]

	dot := strings.IndexByte(rest, '.')
	if dot <= 0 {
		return "", false
	}
	// multiple dots are fine, e.g. server_raid.backup.cfg
	if !strings.HasSuffix(rest[dot:], cfgSuffix) {
		return "", false
	}

	return rest[:dot], true
}
