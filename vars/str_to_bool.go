package vars

import "strings"

// ParseBool reports the truth value of str and whether str was a recognized spelling.
func ParseBool(str string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, true
	case "false", "f", "no", "n", "off", "0":
		return false, true
	}
	return false, false
}

// StrToBool is ParseBool with unrecognized strings as false.
func StrToBool(str string) bool {
	value, _ := ParseBool(str)
	return value
}
