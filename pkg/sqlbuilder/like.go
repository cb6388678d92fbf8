package sqlbuilder

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
