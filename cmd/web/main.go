package main

import "servicehub_backend/internal/app"

func main() {
	app.Run()
}
