package version

import "fmt"

// Заполняется через -ldflags при сборке.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info возвращает версию, коммит и дату сборки.
func Info() (v, c, d string) { return version, commit, date }

func String() string {
	return fmt.Sprintf("bistro %s (commit %s, built %s)", version, commit, date)
}
