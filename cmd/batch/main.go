package main

import "joonbee_backend/internal/app"

func main() {
	app.RunBatch()
}
