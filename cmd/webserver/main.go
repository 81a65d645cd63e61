// Command webserver exposes the tokenizer as an HTTP service: POST an HTML
// body to /tokenize and get back the token stream as JSON. The request
// body is read and fed to the tokenizer in chunks rather than all at once,
// exercising the same suspend/resume path a streaming client would drive.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/lukehoban/htmltok/html"
)

// chunkSize is how many bytes of the request body are fed to the
// tokenizer per Feed/Run cycle.
const chunkSize = 512

func main() {
	port := flag.String("port", "8080", "port to listen on")
	host := flag.String("host", "0.0.0.0", "host to bind to")
	flag.Parse()

	addr := fmt.Sprintf("%s:%s", *host, *port)

	r := mux.NewRouter()
	r.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/tokenize", handleTokenize).Methods(http.MethodPost)

	logged := handlers.CombinedLoggingHandler(os.Stdout, r)

	fmt.Printf("tokenizer web service listening on http://%s\n", addr)
	fmt.Printf("  POST /tokenize  - body is tokenized, response is a JSON array of tokens\n")
	fmt.Printf("  GET  /health    - liveness check\n")

	if err := http.ListenAndServe(addr, logged); err != nil {
		fmt.Fprintf(os.Stderr, "server exited: %v\n", err)
		os.Exit(1)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// handleTokenize reads the request body in fixed-size chunks, feeding each
// to a fresh Tokenizer and calling Run between chunks, so a slow or
// streaming client never requires this handler to buffer the whole body
// before tokenization can start.
func handleTokenize(w http.ResponseWriter, r *http.Request) {
	tok := html.New()
	var tokens []html.Token
	tok.SetTokenSink(func(t html.Token) { tokens = append(tokens, t) })
	tok.SetErrorSink(html.LogErrorSink)

	br := bufio.NewReaderSize(r.Body, chunkSize)
	buf := make([]byte, chunkSize)
	for {
		n, err := br.Read(buf)
		if n > 0 {
			tok.Feed(buf[:n])
			if _, runErr := tok.Run(); runErr != nil {
				http.Error(w, fmt.Sprintf("tokenize error: %v", runErr), http.StatusBadRequest)
				return
			}
		}
		if err != nil {
			break
		}
	}
	tok.CloseInput()
	if _, err := tok.Run(); err != nil {
		http.Error(w, fmt.Sprintf("tokenize error: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tokens); err != nil {
		http.Error(w, fmt.Sprintf("encode error: %v", err), http.StatusInternalServerError)
	}
}
