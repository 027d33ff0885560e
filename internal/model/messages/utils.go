package messages

import (
	"strings"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return stripBotName(split[0]), split[1]
	}
	if strings.HasPrefix(text, "/") {
		return stripBotName(text), ""
	}
	return "", text
}

// stripBotName turns "/total@gastos_bot" into "/total".
func stripBotName(cmd string) string {
	if i := strings.Index(cmd, "@"); i > 0 {
		return cmd[:i]
	}
	return cmd
}
