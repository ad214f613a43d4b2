package main

import "net/http"

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", app.handleHealth)
	mux.HandleFunc("/ws", app.authenticate(app.handleWebSocket))
	mux.Handle("/", http.FileServer(http.Dir(app.Config.StaticDir)))

	return mux
}
