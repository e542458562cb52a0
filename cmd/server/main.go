package main

import "quote-genius/go_backend/internal/app"

func main() {
	app.Run()
}
