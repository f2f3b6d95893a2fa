package httpx

import (
	"fmt"
	"net/http"

	"github.com/Eslamsamyx/kayanlive-questionnaire/log"
)

// LogInternalError logs the error and sends a 500 with default text. The
// error detail never reaches the client.
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// LogNotFound logs a debug line and sends a bare 404.
func LogNotFound(w http.ResponseWriter, code string, id any) {
	log.Debugf("%s: not found (%v)", code, id)
	w.WriteHeader(http.StatusNotFound)
}

// LogStatus logs an error code at the given level and sends the status with
// its default text.
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// LogStatusMsg logs an error code and message at the given level and sends
// the status with the formatted message.
func LogStatusMsg(w http.ResponseWriter, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", errMsg)
	http.Error(w, errMsg, status)
}
