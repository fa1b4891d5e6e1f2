package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/lilyparse/constants"
	"github.com/jsphweid/lilyparse/format"
	"github.com/jsphweid/lilyparse/lily"
	"github.com/jsphweid/lilyparse/model"
	"github.com/jsphweid/lilyparse/notation"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves a parse endpoint",
	Long:  `Serves a parse endpoint`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleParse is exported for the e2e test.
func HandleParse(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		fmt.Println("Could not read request body: " + err.Error())
		writeError(w, "could not read request body")
		return
	}

	var input model.ParseRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, "could not unmarshal request body: "+err.Error())
		return
	}

	col, err := lily.Parse(input.Source)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	// a parsed column always has a source rendering
	lilySrc, err := lily.Write(col)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	res := model.ParseResponse{
		Id:       uuid.New().String(),
		Tree:     format.Column(col),
		Lily:     lilySrc,
		Duration: format.Duration(notation.TotalDuration(col)),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
