package handlers

import (
	"net/http"

	"github.com/hmendez/bookshelf-api/app"
	"github.com/hmendez/bookshelf-api/utils"
	"go.uber.org/zap"
)

// HealthCheck responds 200 {"msg":"api is up and running"}. It cannot
// fail: no inputs are read and no external calls are made.
func HealthCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := utils.WriteMessage(w, "api is up and running"); err != nil {
			deps.Logger.Error("failed to write health response", zap.Error(err))
		}
	}
}

// BooksHandler responds 200 {"msg":"this is the books endpoint"}. A
// placeholder until the books data model and persistence layer exist.
func BooksHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := utils.WriteMessage(w, "this is the books endpoint"); err != nil {
			deps.Logger.Error("failed to write books response", zap.Error(err))
		}
	}
}
