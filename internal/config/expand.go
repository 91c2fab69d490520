package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// now is replaced in tests.
var now = time.Now

// ExpandTilde replaces a leading ~ or ~/ with the user's home directory.
// ~user is left alone.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// Expand substitutes the output path variables in s:
//
//	${PROJECT}  name of the working directory
//	${USER}     current user name
//	${HOME}     home directory
//	${DATE}     today as YYYY-MM-DD
//
// Unknown ${NAME} references and bare $NAME are kept verbatim.
func Expand(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			break
		}
		end := strings.IndexByte(s[start:], '}')
		if end < 0 {
			break
		}
		end += start
		b.WriteString(s[:start])
		if v, ok := pathVar(s[start+2 : end]); ok {
			b.WriteString(v)
		} else {
			b.WriteString(s[start : end+1])
		}
		s = s[end+1:]
	}
	b.WriteString(s)
	return b.String()
}

func pathVar(name string) (string, bool) {
	switch name {
	case "PROJECT":
		if cwd, err := os.Getwd(); err == nil {
			return filepath.Base(cwd), true
		}
		return "project", true
	case "USER":
		for _, env := range []string{"USER", "LOGNAME", "USERNAME"} {
			if u := os.Getenv(env); u != "" {
				return u, true
			}
		}
		return "user", true
	case "HOME":
		if home, err := os.UserHomeDir(); err == nil {
			return home, true
		}
		return "~", true
	case "DATE":
		return now().Format(time.DateOnly), true
	}
	return "", false
}
