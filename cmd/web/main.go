package main

import "promanager_backend/internal/app"

func main() {
	app.Run()
}
