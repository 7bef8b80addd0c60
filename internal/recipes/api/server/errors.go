package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ikaro-souza/recipe-app-api/internal/pkg/validate"
)

var (
	errAuthHeaderRequired = errors.New("authentication credentials were not provided")
	errInvalidToken       = errors.New("invalid authentication token")
)

type Error struct {
	Err string `json:"error"`
}

func (se Error) ToJSON() []byte {
	b, err := json.Marshal(se)
	if err != nil {
		se.Err = err.Error()

		b, err := json.Marshal(se)
		if err != nil {
			return []byte(`{
				"error": "marshal error"
			  }`)
		}

		return b
	}

	return b
}

type FieldErrorsResponse struct {
	Errors validate.FieldErrors `json:"errors"`
}

func handleError(w http.ResponseWriter, err error, code int) {
	w.WriteHeader(code)

	e := Error{err.Error()}

	w.Write(e.ToJSON()) //nolint:errcheck
}

// handleServiceError renders field validation failures as a 400 with a
// field→message map and everything else as the fallback code.
func handleServiceError(w http.ResponseWriter, err error, fallback int) {
	var fe validate.FieldErrors
	if errors.As(err, &fe) {
		w.WriteHeader(http.StatusBadRequest)

		resp := FieldErrorsResponse{Errors: fe}

		b, errM := json.Marshal(resp)
		if errM != nil {
			w.Write(Error{errM.Error()}.ToJSON()) //nolint:errcheck

			return
		}

		w.Write(b) //nolint:errcheck

		return
	}

	handleError(w, err, fallback)
}
