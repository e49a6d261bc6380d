package handler

import (
	"errors"
	"net/http"
	"strconv"

	"meddesk-hms/internal/usecase"
	"meddesk-hms/pkg/response"

	"github.com/gorilla/mux"
)

var errInvalidID = errors.New("invalid id")

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// writeDataAccessError surfaces the store's message to the operator
func writeDataAccessError(w http.ResponseWriter, err error, message string) {
	var dae *usecase.DataAccessError
	if errors.As(err, &dae) {
		response.Error(w, http.StatusInternalServerError, message, dae.Error())
		return
	}
	response.InternalServerError(w, message)
}
