package ai

import "fmt"

func (ai *AI) writeLog(key string, v string) {
	ai.log.Debug().Str(key, v).Msg("ai")
}

func (ai *AI) writeLogf(format string, v ...any) {
	ai.log.Debug().Msg(fmt.Sprintf(format, v...))
}
